// Package venue implements one adapter per cinema. Each adapter fetches a
// venue's listings page (or feed) and extracts raw candidate records; all
// date/time interpretation beyond raw text capture belongs to the
// normalizer. The core never inspects venue-specific markup outside the
// venue's own adapter.
package venue

import (
	"context"
	"time"

	"github.com/dcfilmcal/screenings/internal/config"
	"github.com/dcfilmcal/screenings/internal/fetch"
	"github.com/dcfilmcal/screenings/internal/logger"
	"github.com/dcfilmcal/screenings/internal/screening"
)

// Adapter fetches raw candidate records for one venue.
type Adapter interface {
	// ID is the venue's internal identifier.
	ID() string

	// Name is the human-readable venue name.
	Name() string

	// Fetch retrieves the venue's current raw candidates. An error means
	// the whole venue contributed nothing this run; partial extraction
	// problems surface as missing candidates, not errors.
	Fetch(ctx context.Context) ([]screening.RawCandidate, error)
}

// Deps carries the shared collaborators handed to every adapter.
type Deps struct {
	Client  *fetch.Client
	Browser *fetch.Browser

	// Today is the run date in the reference timezone, "YYYY-MM-DD".
	// Listings that print showtimes without a date are today's showings.
	Today string

	// Reference is the injected instant for missing-year inference.
	Reference time.Time

	// Timeout bounds each headless-browser session.
	Timeout time.Duration
}

// FromConfig builds adapters for the enabled venues in the config table.
// Unknown venue IDs are logged and skipped so a stale config entry cannot
// abort the run.
func FromConfig(venues []config.Venue, deps Deps) []Adapter {
	adapters := make([]Adapter, 0, len(venues))

	for _, v := range venues {
		if !v.Enabled {
			continue
		}

		switch v.ID {
		case "suns":
			adapters = append(adapters, &Suns{cfg: v, deps: deps})
		case "avalon":
			adapters = append(adapters, &Avalon{cfg: v, deps: deps})
		case "angelika":
			adapters = append(adapters, &Angelika{cfg: v, deps: deps})
		case "alamo":
			adapters = append(adapters, &Alamo{cfg: v, deps: deps})
		case "nga":
			adapters = append(adapters, &NGA{cfg: v, deps: deps})
		case "miracle":
			adapters = append(adapters, NewMiracle(v, deps))
		default:
			logger.Warn("unknown venue id in config, skipping", logger.Fields{
				"venue": v.ID,
			})
		}
	}

	return adapters
}
