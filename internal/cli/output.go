package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dcfilmcal/screenings/internal/screening"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult summarizes one aggregation run
type OutputResult struct {
	GeneratedAt    time.Time              `json:"generated_at"`
	SnapshotPath   string                 `json:"snapshot_path"`
	VenueCount     int                    `json:"venue_count"`
	ScreeningCount int                    `json:"screening_count"`
	FirstDate      string                 `json:"first_date,omitempty"`
	LastDate       string                 `json:"last_date,omitempty"`
	Metrics        map[string]interface{} `json:"metrics,omitempty"`
}

// WriteOutput writes the run summary in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeText outputs the run summary as human-readable text
func writeText(w io.Writer, result *OutputResult) error {
	if result.ScreeningCount == 0 {
		fmt.Fprintf(w, "No upcoming screenings found across %d venues.\n", result.VenueCount)
		fmt.Fprintf(w, "Snapshot written to %s\n", result.SnapshotPath)
		return nil
	}

	fmt.Fprintf(w, "Wrote %d screenings from %d venues to %s\n",
		result.ScreeningCount, result.VenueCount, result.SnapshotPath)
	if result.FirstDate != "" {
		fmt.Fprintf(w, "Coverage: %s through %s\n", result.FirstDate, result.LastDate)
	}
	return nil
}

// WriteFeed prints a snapshot, either as the raw JSON contract or as a
// date-grouped listing for a quick eyeball check.
func WriteFeed(w io.Writer, feed *screening.Feed, format OutputFormat) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(feed)
	case FormatText:
		if len(feed.Screenings) == 0 {
			fmt.Fprintln(w, "No screenings in snapshot.")
			return nil
		}

		currentDate := ""
		for _, s := range feed.Screenings {
			if s.Date != currentDate {
				currentDate = s.Date
				fmt.Fprintf(w, "\n%s:\n", currentDate)
			}
			fmt.Fprintf(w, "  %s  %s (%s)\n", s.Time, s.Title, s.Venue)
		}
		if feed.LastUpdated != "" {
			fmt.Fprintf(w, "\nLast updated: %s\n", feed.LastUpdated)
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
