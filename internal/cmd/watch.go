package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
)

type WatchCmd struct {
	Schedule string `help:"Cron schedule for refresh runs." default:"0 */6 * * *"`
	UpdateOptions
}

func (w *WatchCmd) Run(ctx *Context) error {
	if w.DryRun {
		return fmt.Errorf("--dry-run is not supported in watch mode")
	}
	if w.JSON {
		return fmt.Errorf("--json is not supported in watch mode")
	}

	tick := func() {
		if err := runUpdate(ctx, w.UpdateOptions); err != nil {
			ctx.UI.Errorf("Update failed: %v", err)
		}
	}

	runner := cron.New()
	if _, err := runner.AddFunc(w.Schedule, tick); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", w.Schedule, err)
	}

	ctx.UI.Infof("Refreshing on schedule %q, press Ctrl+C to stop", w.Schedule)

	// First refresh runs immediately, the schedule covers the rest.
	go tick()
	runner.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	<-runner.Stop().Done()
	return nil
}
