package venue

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/dcfilmcal/screenings/internal/config"
	"github.com/dcfilmcal/screenings/internal/parse"
	"github.com/dcfilmcal/screenings/internal/screening"
)

// Miracle reads the Miracle Theatre's RSS feed. Post titles carry the
// screening date ("The Red Shoes – Dec 22"); when a title has no date the
// item's publication date stands in. Showtimes, when announced at all,
// appear in the item description, so the description is handed to the
// normalizer as raw time text and the venue's fixed evening default covers
// the rest.
type Miracle struct {
	cfg    config.Venue
	deps   Deps
	parser *gofeed.Parser
}

// NewMiracle creates the Miracle Theatre feed adapter.
func NewMiracle(cfg config.Venue, deps Deps) *Miracle {
	return &Miracle{
		cfg:    cfg,
		deps:   deps,
		parser: gofeed.NewParser(),
	}
}

func (m *Miracle) ID() string   { return m.cfg.ID }
func (m *Miracle) Name() string { return m.cfg.Name }

func (m *Miracle) Fetch(ctx context.Context) ([]screening.RawCandidate, error) {
	body, err := m.deps.Client.Get(ctx, m.cfg.URL)
	if err != nil {
		return nil, err
	}

	feed, err := m.parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	return m.extract(feed), nil
}

func (m *Miracle) extract(feed *gofeed.Feed) []screening.RawCandidate {
	candidates := make([]screening.RawCandidate, 0, len(feed.Items))

	for _, item := range feed.Items {
		rawDate := item.Title
		if _, ok := parse.ParseDate(rawDate, m.deps.Reference); !ok {
			if item.PublishedParsed == nil {
				continue
			}
			rawDate = item.PublishedParsed.Format("2006-01-02")
		}

		poster := ""
		if item.Image != nil {
			poster = item.Image.URL
		}

		candidates = append(candidates, screening.RawCandidate{
			Title:     cleanFeedTitle(item.Title),
			VenueID:   m.cfg.ID,
			RawDate:   rawDate,
			RawTime:   item.Description,
			PosterURL: poster,
			TicketURL: item.Link,
		})
	}

	return candidates
}

// cleanFeedTitle strips the trailing date portion from a post title, so
// "The Red Shoes – Dec 22" becomes "The Red Shoes".
func cleanFeedTitle(title string) string {
	for _, sep := range []string{" – ", " — ", " - ", " | "} {
		if idx := strings.Index(title, sep); idx > 0 {
			return strings.TrimSpace(title[:idx])
		}
	}
	return strings.TrimSpace(title)
}
