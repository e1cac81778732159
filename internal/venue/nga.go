package venue

import (
	"context"
	"regexp"
	"strings"

	"github.com/dcfilmcal/screenings/internal/config"
	"github.com/dcfilmcal/screenings/internal/fetch"
	"github.com/dcfilmcal/screenings/internal/screening"
)

// NGA scrapes the National Gallery of Art's film calendar. The calendar's
// markup changes often, so extraction scans the rendered page text line by
// line instead of relying on selectors: a "December 27, 2025" line sets
// the current date, a "FILMS" marker introduces a title, and a
// "2:00 p.m." line closes out one screening.
type NGA struct {
	cfg  config.Venue
	deps Deps
}

func (n *NGA) ID() string   { return n.cfg.ID }
func (n *NGA) Name() string { return n.cfg.Name }

var (
	ngaDatePattern = regexp.MustCompile(`^[A-Za-z]+\s+\d{1,2},\s+\d{4}$`)
	ngaTimePattern = regexp.MustCompile(`(?i)^\d{1,2}:\d{2}\s*[ap]\.?m\.?`)
)

func (n *NGA) Fetch(ctx context.Context) ([]screening.RawCandidate, error) {
	text, err := n.deps.Browser.PageText(ctx, fetch.PageOptions{
		URL:     n.cfg.URL,
		Timeout: n.deps.Timeout,
	})
	if err != nil {
		return nil, err
	}

	return n.extract(text), nil
}

func (n *NGA) extract(text string) []screening.RawCandidate {
	var candidates []screening.RawCandidate

	lines := strings.Split(text, "\n")

	var currentDate, currentTitle string
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		if ngaDatePattern.MatchString(line) {
			currentDate = line
			continue
		}

		if line == "FILMS" {
			// The next substantive line is the film title.
			for j := i + 1; j < len(lines); j++ {
				next := strings.TrimSpace(lines[j])
				if next == "" || next == "FILM SERIES" || strings.Contains(next, "Learn More") {
					continue
				}
				currentTitle = next
				i = j
				break
			}
			continue
		}

		if ngaTimePattern.MatchString(line) && currentTitle != "" && currentDate != "" {
			candidates = append(candidates, screening.RawCandidate{
				Title:     currentTitle,
				VenueID:   n.cfg.ID,
				RawDate:   currentDate,
				RawTime:   line,
				TicketURL: n.cfg.URL,
			})
			currentTitle = ""
		}
	}

	return candidates
}
