// Package screening defines the canonical screening entity and the pure
// normalization, deduplication, and merge logic applied to raw venue
// listings.
package screening

import "time"

// MaxTitleLen is the longest trimmed title, in characters, accepted by the
// normalizer.
// Longer "titles" are almost always a container element's text captured by
// an over-broad selector.
const MaxTitleLen = 100

// RawCandidate is an unvalidated record extracted from a venue's listing
// before normalization. Candidates are ephemeral and never persisted.
type RawCandidate struct {
	Title     string
	VenueID   string
	RawDate   string
	RawTime   string
	PosterURL string
	TicketURL string
}

// Screening is one scheduled showing of one title at one venue. Screenings
// are immutable once constructed; enrichment produces replacement values
// rather than mutating in place.
type Screening struct {
	Title      string  `json:"title"`
	Venue      string  `json:"venue"`
	Date       string  `json:"date"` // YYYY-MM-DD
	Time       string  `json:"time"` // 24-hour HH:MM
	Poster     *string `json:"poster"`
	TicketLink *string `json:"ticketLink"`
}

// Key returns the dedup identity: the same (title, venue, date, time)
// always means the same physical showing.
func (s Screening) Key() string {
	return s.Title + "|" + s.Venue + "|" + s.Date + "|" + s.Time
}

// Feed is the merged, sorted set of future screenings across all venues.
// It is rebuilt from scratch on every run and fully replaces any prior
// snapshot; there are no incremental update semantics.
type Feed struct {
	LastUpdated string      `json:"lastUpdated"`
	Screenings  []Screening `json:"screenings"`
}

// optional converts an adapter's empty-means-absent string into the
// nullable JSON representation the front end expects.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// timestamp formats a feed generation instant for the snapshot contract.
func timestamp(now time.Time) string {
	return now.UTC().Format(time.RFC3339)
}
