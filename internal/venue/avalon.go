package venue

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dcfilmcal/screenings/internal/config"
	"github.com/dcfilmcal/screenings/internal/screening"
)

// Avalon scrapes theavalon.org. The homepage lists today's showtimes as
// bare "H:MM" values with no meridiem; the venue's evening-below-ten
// convention resolves them downstream.
type Avalon struct {
	cfg  config.Venue
	deps Deps
}

func (a *Avalon) ID() string   { return a.cfg.ID }
func (a *Avalon) Name() string { return a.cfg.Name }

// bareTimePattern accepts only an undecorated H:MM; anything longer is
// navigation text, not a showtime.
var bareTimePattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

func (a *Avalon) Fetch(ctx context.Context) ([]screening.RawCandidate, error) {
	body, err := a.deps.Client.Get(ctx, a.cfg.URL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return a.extract(doc), nil
}

func (a *Avalon) extract(doc *goquery.Document) []screening.RawCandidate {
	var candidates []screening.RawCandidate

	doc.Find("ul.showtimes li, .showtimes li").Each(func(i int, item *goquery.Selection) {
		titleLink := item.Find("a").First()
		title := strings.TrimSpace(titleLink.Text())
		link := titleLink.AttrOr("href", "")
		poster := item.Find("img").AttrOr("src", "")

		item.Find(".times span, .times a").Each(func(j int, timeEl *goquery.Selection) {
			timeText := strings.TrimSpace(timeEl.Text())
			if !bareTimePattern.MatchString(timeText) {
				return
			}

			candidates = append(candidates, screening.RawCandidate{
				Title:     title,
				VenueID:   a.cfg.ID,
				RawDate:   a.deps.Today,
				RawTime:   timeText,
				PosterURL: poster,
				TicketURL: link,
			})
		})
	})

	return candidates
}
