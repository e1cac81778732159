// Package cli implements the dc-screenings command: a single-shot
// aggregation run plus a subcommand for inspecting the current snapshot.
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dcfilmcal/screenings/internal/config"
	"github.com/dcfilmcal/screenings/internal/enrich"
	"github.com/dcfilmcal/screenings/internal/fetch"
	"github.com/dcfilmcal/screenings/internal/logger"
	"github.com/dcfilmcal/screenings/internal/parse"
	"github.com/dcfilmcal/screenings/internal/pipeline"
	"github.com/dcfilmcal/screenings/internal/storage"
	"github.com/dcfilmcal/screenings/internal/venue"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig   string
	flagOut      string
	flagVenue    string
	flagFormat   string
	flagVerbose  bool
	flagNoEnrich bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dc-screenings",
		Short: "Aggregate DC independent-cinema screenings into a JSON feed",
		Long: `Fetches screening listings from DC independent theaters, normalizes
them into a common schedule record, and writes a merged, sorted snapshot
for the calendar front end. Each run fully replaces the previous snapshot.`,
		SilenceUsage: true,
		RunE:         runAggregate,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config (built-in defaults when omitted)")
	cmd.PersistentFlags().StringVar(&flagOut, "out", "", "Snapshot path (overrides config)")
	cmd.Flags().StringVar(&flagVenue, "venue", "", "Restrict the run to one venue id")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	cmd.Flags().BoolVar(&flagNoEnrich, "no-enrich", false, "Skip TMDB metadata enrichment")

	cmd.AddCommand(newShowCmd())

	return cmd
}

// runAggregate is the main command logic
func runAggregate(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	conf, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagOut != "" {
		conf.Output = flagOut
	}

	venues, err := selectVenues(conf.Venues, flagVenue)
	if err != nil {
		return err
	}

	loc, err := conf.Location()
	if err != nil {
		return err
	}

	now := time.Now()
	today := parse.Today(now, loc)
	ref := now.In(loc)

	deps := venue.Deps{
		Client:    fetch.NewClient(conf.AdapterTimeout()),
		Browser:   fetch.NewBrowser(),
		Today:     today,
		Reference: ref,
		Timeout:   conf.AdapterTimeout(),
	}

	adapters := venue.FromConfig(venues, deps)
	policies := pipeline.Policies(venues, ref)

	logger.Info("aggregation starting", logger.Fields{
		"venues": len(adapters),
		"today":  today,
	})

	ctx := cmd.Context()
	feed := pipeline.Run(ctx, adapters, policies, pipeline.Options{
		Today:          today,
		Now:            now,
		AdapterTimeout: conf.AdapterTimeout(),
	})

	if !flagNoEnrich {
		client := enrich.NewClient(os.Getenv("TMDB_API_KEY"),
			time.Duration(conf.EnrichCacheTTLHours)*time.Hour)
		if client.Enabled() {
			feed.Screenings = enrich.Apply(ctx, feed.Screenings, client)
		} else {
			logger.Debug("TMDB_API_KEY not set, enrichment disabled", nil)
		}
	}

	store, err := storage.New(conf.Output)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	if err := store.Write(feed); err != nil {
		// Fatal: the previous snapshot stays valid on disk.
		return fmt.Errorf("saving snapshot: %w", err)
	}

	result := &OutputResult{
		GeneratedAt:    now.UTC(),
		SnapshotPath:   store.Path(),
		VenueCount:     len(adapters),
		ScreeningCount: len(feed.Screenings),
	}
	if len(feed.Screenings) > 0 {
		result.FirstDate = feed.Screenings[0].Date
		result.LastDate = feed.Screenings[len(feed.Screenings)-1].Date
	}
	if flagVerbose {
		result.Metrics = logger.GetMetricsSnapshot()
	}

	return WriteOutput(os.Stdout, result, format)
}

// selectVenues applies the --venue restriction to the config table.
func selectVenues(venues []config.Venue, only string) ([]config.Venue, error) {
	if only == "" {
		return venues, nil
	}

	only = strings.ToLower(strings.TrimSpace(only))
	for _, v := range venues {
		if v.ID == only {
			return []config.Venue{v}, nil
		}
	}
	return nil, fmt.Errorf("unknown venue id: %s", only)
}

// newShowCmd creates the snapshot inspection subcommand.
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(flagConfig)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if flagOut != "" {
				conf.Output = flagOut
			}

			store, err := storage.New(conf.Output)
			if err != nil {
				return fmt.Errorf("initializing storage: %w", err)
			}
			feed, err := store.Load()
			if err != nil {
				return fmt.Errorf("loading snapshot: %w", err)
			}

			format := OutputFormat(strings.ToLower(flagFormat))
			return WriteFeed(os.Stdout, feed, format)
		},
	}
}
