package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/LogicodeHQ/hardware-jobs-internships-2026/internal/config"
)

type SourcesCmd struct {
	List SourcesListCmd `cmd:"" help:"List entries from a sources manifest."`
}

type SourcesListCmd struct {
	Sources string `arg:"" help:"Path to a YAML sources manifest."`
}

func (c *SourcesListCmd) Run(ctx *Context) error {
	entries, err := config.LoadSources(c.Sources)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ctx.UI.Infof("No sources in %s", c.Sources)
		return nil
	}

	tw := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "name\tkind\turl\tsection")
	for _, entry := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", entry.Name, entry.Kind, entry.URL, entry.Section)
	}
	return tw.Flush()
}
