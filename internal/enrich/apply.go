package enrich

import (
	"context"
	"regexp"
	"strings"

	"github.com/dcfilmcal/screenings/internal/logger"
	"github.com/dcfilmcal/screenings/internal/screening"
)

// yearHintPattern pulls a release year out of repertory-style titles such
// as "Casablanca (1942)".
var yearHintPattern = regexp.MustCompile(`\((\d{4})\)\s*$`)

// Apply enriches a merged screening list sequentially, one item at a time.
// A screening gains a poster when it has none and TMDB offers one, and its
// title is replaced only when TMDB's canonical title matches
// case-insensitively (so venue-specific series titles survive). Venue,
// date and time are never touched; enrichment yields replacement values,
// not mutations. A failed lookup leaves that screening as-is and the loop
// continues.
func Apply(ctx context.Context, in []screening.Screening, client *Client) []screening.Screening {
	if client == nil || !client.Enabled() {
		return in
	}

	out := make([]screening.Screening, len(in))
	for i, s := range in {
		out[i] = enrichOne(ctx, s, client)
	}
	return out
}

func enrichOne(ctx context.Context, s screening.Screening, client *Client) screening.Screening {
	knownYear := ""
	if m := yearHintPattern.FindStringSubmatch(s.Title); m != nil {
		knownYear = m[1]
	}

	result, err := client.Lookup(ctx, s.Title, knownYear)
	if err != nil {
		logger.Warn("enrichment lookup failed, keeping original", logger.Fields{
			"title": s.Title,
		})
		return s
	}
	if result == nil {
		return s
	}

	if s.Poster == nil && result.Poster != "" {
		poster := result.Poster
		s.Poster = &poster
	}
	if result.Title != "" && strings.EqualFold(result.Title, s.Title) {
		s.Title = result.Title
	}

	return s
}
