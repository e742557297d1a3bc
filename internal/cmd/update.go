package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/LogicodeHQ/hardware-jobs-internships-2026/internal/config"
	"github.com/LogicodeHQ/hardware-jobs-internships-2026/internal/docfile"
	"github.com/LogicodeHQ/hardware-jobs-internships-2026/internal/listing"
	"github.com/LogicodeHQ/hardware-jobs-internships-2026/internal/models"
	"github.com/LogicodeHQ/hardware-jobs-internships-2026/internal/network"
	"github.com/LogicodeHQ/hardware-jobs-internships-2026/internal/render"
	"github.com/LogicodeHQ/hardware-jobs-internships-2026/internal/source"
)

var (
	ErrConfigMissing = errors.New("missing required configuration")
	ErrNoListings    = errors.New("no listings obtained from any source")
)

type UpdateCmd struct {
	UpdateOptions
}

type UpdateOptions struct {
	SourceURL string `help:"Job board page URL to scrape." env:"DATA_SOURCE_URL"`
	SheetURL  string `help:"Sheet CSV export URL merged ahead of the board." env:"SHEET_CSV_URL"`
	Output    string `name:"output" short:"o" help:"Path of the markdown document to write."`
	Section   string `help:"Board section heading to extract."`
	Timeout   int    `help:"HTTP timeout in seconds."`
	NoAge     bool   `help:"Parse board rows without an age column."`
	Split     bool   `name:"split-sections" help:"Split the document into internship and new grad sections."`
	Bucket    string `name:"default-bucket" help:"Default bucket for untyped listings: internship or new-grad."`
	Sources   string `help:"Path to a YAML sources manifest with extra sources."`
	Proxies   string `help:"Comma-separated proxy URLs." env:"HWJOBS_PROXIES"`
	DryRun    bool   `help:"Print the rendered document to stdout instead of writing it."`
	JSON      bool   `help:"Print merged listings as JSON instead of rendering markdown."`
}

func (u *UpdateCmd) Run(ctx *Context) error {
	return runUpdate(ctx, u.UpdateOptions)
}

func runUpdate(ctx *Context, opts UpdateOptions) error {
	logger := ctx.Logger.With().Str("run_id", uuid.NewString()).Logger()

	if strings.TrimSpace(opts.SourceURL) == "" {
		return fmt.Errorf("%w: DATA_SOURCE_URL", ErrConfigMissing)
	}

	cfg := ctx.Config
	outputPath := firstNonEmpty(opts.Output, cfg.OutputPath)
	section := firstNonEmpty(opts.Section, cfg.SectionHeader)
	timeout := time.Duration(defaultInt(opts.Timeout, cfg.TimeoutSeconds)) * time.Second
	ageColumn := cfg.AgeColumn && !opts.NoAge
	split := opts.Split || cfg.SplitSections

	bucket, err := render.ParseBucket(firstNonEmpty(opts.Bucket, cfg.DefaultBucket))
	if err != nil {
		return err
	}

	manifest, err := config.LoadSources(opts.Sources)
	if err != nil {
		return err
	}

	proxies, err := config.LoadProxies(opts.Proxies)
	if err != nil {
		return err
	}

	var rotator *network.Rotator
	if len(proxies) > 0 {
		rotator, err = network.NewRotator(proxies, 10*time.Minute)
		if err != nil {
			return err
		}
	}

	client, err := network.NewClient(rotator, timeout)
	if err != nil {
		return err
	}
	logger.Debug().Int("proxies", rotator.Size()).Dur("timeout", timeout).Msg("client ready")

	sources := assembleSources(client, opts, manifest, section, ageColumn)
	batches, counts := collectListings(ctx, logger, sources)

	merged, stats := listing.Merge(batches...)
	logger.Debug().
		Int("total_in", stats.TotalIn).
		Int("invalid", stats.Invalid).
		Int("duplicates", stats.Duplicates).
		Int("total_out", stats.TotalOut).
		Msg("merged listings")

	if len(merged) == 0 {
		return ErrNoListings
	}

	if opts.JSON {
		return writeListingsJSON(ctx.Out, merged)
	}

	document := render.Document(merged, render.Options{
		SplitSections: split,
		DefaultBucket: bucket,
	})

	if opts.DryRun {
		_, err := fmt.Fprint(ctx.Out, document)
		return err
	}

	written, err := docfile.WriteIfChanged(outputPath, document, render.TimestampPrefix)
	if err != nil {
		return err
	}
	if written {
		ctx.UI.Successf("Updated %s with %d listings", outputPath, len(merged))
	} else {
		ctx.UI.Infof("No changes for %s (%d listings)", outputPath, len(merged))
	}

	printUpdateSummary(ctx, len(merged), written, counts)
	return nil
}

// assembleSources builds the fetch list in merge priority order: the sheet
// first, manifest entries next, the main board last.
func assembleSources(client *network.Client, opts UpdateOptions, manifest []config.SourceEntry, section string, ageColumn bool) []source.Source {
	var sources []source.Source
	if strings.TrimSpace(opts.SheetURL) != "" {
		sources = append(sources, source.NewSheet("sheet", opts.SheetURL, client))
	}
	for _, entry := range manifest {
		switch entry.Kind {
		case config.SourceKindBoard:
			entryAge := ageColumn
			if entry.Age != nil {
				entryAge = *entry.Age
			}
			sources = append(sources, source.NewBoard(entry.Name, entry.URL, firstNonEmpty(entry.Section, section), entryAge, client))
		default:
			sources = append(sources, source.NewSheet(entry.Name, entry.URL, client))
		}
	}
	sources = append(sources, source.NewBoard("board", opts.SourceURL, section, ageColumn, client))
	return sources
}

type sourceCount struct {
	name  string
	total int
}

// collectListings fetches every source in order. A failing source is
// reported and skipped; the run continues with the remaining sources.
func collectListings(ctx *Context, logger zerolog.Logger, sources []source.Source) ([][]models.Listing, []sourceCount) {
	batches := make([][]models.Listing, 0, len(sources))
	counts := make([]sourceCount, 0, len(sources))

	for _, src := range sources {
		listings, err := src.Fetch(context.Background())
		if err != nil {
			logger.Debug().Err(err).Str("source", src.Name()).Msg("source failed")
			if ctx != nil && ctx.UI != nil {
				ctx.UI.Warnf("Source %s failed: %v", src.Name(), err)
			}
			continue
		}
		logger.Debug().Int("listings", len(listings)).Str("source", src.Name()).Msg("source fetched")
		batches = append(batches, listings)
		counts = append(counts, sourceCount{name: src.Name(), total: len(listings)})
	}

	return batches, counts
}

func writeListingsJSON(w io.Writer, listings []models.Listing) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(listings)
}

func printUpdateSummary(ctx *Context, total int, written bool, counts []sourceCount) {
	if ctx == nil || ctx.Err == nil {
		return
	}
	_, _ = fmt.Fprintf(ctx.Err, "%s\n", formatUpdateSummary(total, written, counts))
}

func formatUpdateSummary(total int, written bool, counts []sourceCount) string {
	if len(counts) == 0 {
		return fmt.Sprintf("summary: listings=%d written=%t by_source=none", total, written)
	}

	parts := make([]string, 0, len(counts))
	for _, count := range counts {
		parts = append(parts, fmt.Sprintf("%s:%d", count.name, count.total))
	}

	return fmt.Sprintf("summary: listings=%d written=%t by_source=%s", total, written, strings.Join(parts, ", "))
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func defaultInt(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}
