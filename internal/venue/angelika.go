package venue

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dcfilmcal/screenings/internal/config"
	"github.com/dcfilmcal/screenings/internal/fetch"
	"github.com/dcfilmcal/screenings/internal/screening"
)

// Angelika scrapes the Angelika Pop-Up's now-playing page. The page is a
// JavaScript application, so a headless-browser session renders it before
// extraction: showtime buttons carry "H:MM AM/PM" text, and the enclosing
// movie container provides the title, date and poster.
type Angelika struct {
	cfg  config.Venue
	deps Deps
}

func (g *Angelika) ID() string   { return g.cfg.ID }
func (g *Angelika) Name() string { return g.cfg.Name }

// showtimePattern matches a complete showtime button label and nothing
// else; container elements whose text merely contains a time are skipped.
var showtimePattern = regexp.MustCompile(`(?i)^\d{1,2}:\d{2}\s*(AM|PM)$`)

func (g *Angelika) Fetch(ctx context.Context) ([]screening.RawCandidate, error) {
	html, err := g.deps.Browser.PageHTML(ctx, fetch.PageOptions{
		URL:            g.cfg.URL,
		ScrollToBottom: true,
		Timeout:        g.deps.Timeout,
	})
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return g.extract(doc), nil
}

func (g *Angelika) extract(doc *goquery.Document) []screening.RawCandidate {
	var candidates []screening.RawCandidate

	doc.Find("a, button, div").Each(func(i int, timeEl *goquery.Selection) {
		timeText := strings.TrimSpace(timeEl.Text())
		if !showtimePattern.MatchString(timeText) {
			return
		}

		container := timeEl.Closest(`[class*="movie-details"], .movie-item, [class*="film"]`)
		if container.Length() == 0 {
			return
		}

		title := strings.TrimSpace(container.Find(`h1, h2, h3, h4, [class*="title"]`).First().Text())
		if title == "" {
			return
		}

		dateText := strings.TrimSpace(container.Find(`[class*="date"]`).First().Text())
		if dateText == "" {
			dateText = strings.TrimSpace(doc.Find(`[class*="selected-date"]`).First().Text())
		}
		if dateText == "" {
			dateText = g.deps.Today
		}

		ticket := timeEl.AttrOr("href", "")
		if ticket == "" {
			ticket = timeEl.Closest("a").AttrOr("href", "")
		}

		poster := container.Find("img").First().AttrOr("src", "")
		if poster == "" {
			poster = container.Find("img").First().AttrOr("data-src", "")
		}

		candidates = append(candidates, screening.RawCandidate{
			Title:     title,
			VenueID:   g.cfg.ID,
			RawDate:   dateText,
			RawTime:   timeText,
			PosterURL: poster,
			TicketURL: ticket,
		})
	})

	return candidates
}
