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

// Suns scrapes sunscinema.com. The homepage carries two lists: a
// now-playing section with per-showtime entries for today, and an upcoming
// section with dates like "Sat, Dec 27" but no times.
type Suns struct {
	cfg  config.Venue
	deps Deps
}

func (s *Suns) ID() string   { return s.cfg.ID }
func (s *Suns) Name() string { return s.cfg.Name }

func (s *Suns) Fetch(ctx context.Context) ([]screening.RawCandidate, error) {
	body, err := s.deps.Client.Get(ctx, s.cfg.URL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return s.extract(doc), nil
}

// backgroundURLPattern pulls the poster URL out of an inline
// style="background-image: url(...)" attribute.
var backgroundURLPattern = regexp.MustCompile(`url\(['"]?(.+?)['"]?\)`)

func (s *Suns) extract(doc *goquery.Document) []screening.RawCandidate {
	var candidates []screening.RawCandidate

	// Now-playing: one entry per showtime, today's date.
	doc.Find("#now-playing .show").Each(func(i int, show *goquery.Selection) {
		title := strings.TrimSpace(show.Find("h2").First().Text())
		movieLink := show.Find("a").First().AttrOr("href", "")

		poster := ""
		if style, ok := show.Attr("style"); ok {
			if m := backgroundURLPattern.FindStringSubmatch(style); m != nil {
				poster = m[1]
			}
		}

		show.NextFiltered("ol.showtimes").Find("li").Each(func(j int, li *goquery.Selection) {
			if li.Find(".sold-out").Length() > 0 {
				return
			}

			timeText := strings.TrimSpace(li.Find("span, a").First().Text())
			ticket := li.Find("a").AttrOr("href", movieLink)

			candidates = append(candidates, screening.RawCandidate{
				Title:     title,
				VenueID:   s.cfg.ID,
				RawDate:   s.deps.Today,
				RawTime:   timeText,
				PosterURL: poster,
				TicketURL: ticket,
			})
		})
	})

	// Upcoming: dated announcements without showtimes; the venue's
	// fixed-default convention supplies the evening time.
	doc.Find(".shows .show").Each(func(i int, show *goquery.Selection) {
		title := strings.TrimSpace(show.Find(".show__title").Text())
		dateText := strings.TrimSpace(show.Find(".show__date").Text())
		if title == "" || dateText == "" {
			return
		}

		candidates = append(candidates, screening.RawCandidate{
			Title:     title,
			VenueID:   s.cfg.ID,
			RawDate:   dateText,
			PosterURL: show.Find(".show__image img").AttrOr("src", ""),
			TicketURL: show.Find(".show-link").AttrOr("href", ""),
		})
	})

	return candidates
}
