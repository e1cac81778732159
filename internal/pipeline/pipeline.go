// Package pipeline runs the venue adapters concurrently and merges their
// normalized, deduplicated results into a single feed.
package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/dcfilmcal/screenings/internal/config"
	"github.com/dcfilmcal/screenings/internal/logger"
	"github.com/dcfilmcal/screenings/internal/screening"
	"github.com/dcfilmcal/screenings/internal/venue"
)

// Options configures a single aggregation run.
type Options struct {
	// Today is the run date in the reference timezone, "YYYY-MM-DD".
	Today string

	// Now is the run's generation instant.
	Now time.Time

	// AdapterTimeout bounds each adapter's fetch.
	AdapterTimeout time.Duration
}

// Policies builds the per-venue normalization policies from the config
// table, with the injected reference instant for year inference.
func Policies(venues []config.Venue, ref time.Time) map[string]screening.Policy {
	policies := make(map[string]screening.Policy, len(venues))
	for _, v := range venues {
		policies[v.ID] = screening.Policy{
			VenueName:  v.Name,
			Convention: v.Convention(),
			Reference:  ref,
		}
	}
	return policies
}

// Run fetches every adapter concurrently, normalizes and dedupes each
// venue's candidates, and aggregates the survivors into a feed.
//
// A failing adapter contributes an empty list and the run continues; one
// venue's outage never aborts the aggregation. Per-venue results stay
// private to their goroutine until all adapters settle, so the merge sees
// no concurrent mutation, and final order comes from the aggregate sort,
// never from adapter completion order.
func Run(ctx context.Context, adapters []venue.Adapter, policies map[string]screening.Policy, opts Options) screening.Feed {
	perVenue := make([][]screening.Screening, len(adapters))

	var wg sync.WaitGroup
	for i, a := range adapters {
		wg.Add(1)
		go func(i int, a venue.Adapter) {
			defer wg.Done()
			perVenue[i] = fetchVenue(ctx, a, policies[a.ID()], opts.AdapterTimeout)
		}(i, a)
	}
	wg.Wait()

	return screening.Aggregate(perVenue, opts.Today, opts.Now)
}

func fetchVenue(ctx context.Context, a venue.Adapter, pol screening.Policy, timeout time.Duration) []screening.Screening {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	candidates, err := a.Fetch(ctx)
	logger.RecordTiming("fetch."+a.ID(), time.Since(start))

	if err != nil {
		logger.Warn("venue adapter failed, contributing nothing", logger.Fields{
			"venue": a.ID(),
			"error": err.Error(),
		})
		return nil
	}

	logger.IncrCounter("candidates."+a.ID(), int64(len(candidates)))

	normalized := screening.Normalize(candidates, pol)
	deduped := screening.Dedupe(normalized)

	logger.IncrCounter("screenings."+a.ID(), int64(len(deduped)))
	logger.Info("venue scraped", logger.Fields{
		"venue":      a.ID(),
		"candidates": len(candidates),
		"screenings": len(deduped),
	})

	return deduped
}
