package venue

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dcfilmcal/screenings/internal/config"
	"github.com/dcfilmcal/screenings/internal/fetch"
	"github.com/dcfilmcal/screenings/internal/screening"
)

// Alamo scrapes the Alamo Drafthouse Bryant St film page. The page is a
// JavaScript application: a headless session scrolls the card grid into
// view, then each film card yields its session links as showtimes. Times
// sometimes omit the meridiem, so the venue runs evening-below-ten.
type Alamo struct {
	cfg  config.Venue
	deps Deps
}

func (a *Alamo) ID() string   { return a.cfg.ID }
func (a *Alamo) Name() string { return a.cfg.Name }

func (a *Alamo) Fetch(ctx context.Context) ([]screening.RawCandidate, error) {
	html, err := a.deps.Browser.PageHTML(ctx, fetch.PageOptions{
		URL:            a.cfg.URL,
		ScrollToBottom: true,
		Timeout:        a.deps.Timeout,
	})
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return a.extract(doc), nil
}

func (a *Alamo) extract(doc *goquery.Document) []screening.RawCandidate {
	var candidates []screening.RawCandidate

	// The card selectors overlap (an article can wrap a FilmCard div), so
	// the same session link can surface under two matched cards.
	seen := make(map[string]bool)

	cards := doc.Find(`[class*="FilmCard"], [class*="film-card"], article, [data-film]`)
	cards.Each(func(i int, card *goquery.Selection) {
		title := strings.TrimSpace(card.Find(`h1, h2, h3, h4, [class*="title"], [class*="Title"]`).First().Text())
		if title == "" {
			return
		}

		poster := card.Find("img").First().AttrOr("src", "")

		// Showtimes are links to per-session booking pages; anything
		// without a recognizable time is a synopsis or badge link.
		sessions := card.Find(`a[href*="/session/"], a[class*="session"], button[class*="session"]`)
		sessions.Each(func(j int, session *goquery.Selection) {
			timeText := strings.TrimSpace(session.Text())
			if timeText == "" {
				return
			}

			key := title + "|" + timeText
			if seen[key] {
				return
			}
			seen[key] = true

			candidates = append(candidates, screening.RawCandidate{
				Title:     title,
				VenueID:   a.cfg.ID,
				RawDate:   a.deps.Today,
				RawTime:   timeText,
				PosterURL: poster,
				TicketURL: session.AttrOr("href", ""),
			})
		})
	})

	return candidates
}
