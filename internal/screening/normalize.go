package screening

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dcfilmcal/screenings/internal/logger"
	"github.com/dcfilmcal/screenings/internal/parse"
)

// Policy carries the per-venue settings the normalizer needs: the display
// name stamped onto screenings and the convention for ambiguous times.
type Policy struct {
	VenueName  string
	Convention parse.Convention

	// Reference is the injected instant used for missing-year inference.
	Reference time.Time
}

// Normalize applies the date and time parsers to each candidate and builds
// canonical screenings. Candidates that fail either parse, or whose trimmed
// title is empty or implausibly long, are dropped silently: the feed is
// best-effort and a mis-parsed row must not abort the venue.
func Normalize(candidates []RawCandidate, pol Policy) []Screening {
	out := make([]Screening, 0, len(candidates))

	for _, c := range candidates {
		title := strings.TrimSpace(c.Title)
		if title == "" || utf8.RuneCountInString(title) > MaxTitleLen {
			logger.Debug("candidate rejected: bad title", logger.Fields{
				"venue": pol.VenueName,
				"len":   utf8.RuneCountInString(title),
			})
			continue
		}

		date, ok := parse.ParseDate(c.RawDate, pol.Reference)
		if !ok {
			logger.Debug("candidate dropped: unparseable date", logger.Fields{
				"venue": pol.VenueName,
				"title": title,
				"raw":   c.RawDate,
			})
			continue
		}

		tm, ok := parse.ParseTime(c.RawTime, pol.Convention)
		if !ok {
			logger.Debug("candidate dropped: unparseable time", logger.Fields{
				"venue": pol.VenueName,
				"title": title,
				"raw":   c.RawTime,
			})
			continue
		}

		out = append(out, Screening{
			Title:      title,
			Venue:      pol.VenueName,
			Date:       date,
			Time:       tm,
			Poster:     optional(c.PosterURL),
			TicketLink: optional(c.TicketURL),
		})
	}

	return out
}
