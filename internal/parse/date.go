package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// months maps lowercased full and abbreviated month names to month numbers.
var months = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

var (
	isoPattern = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)

	// monthDayPattern matches "December 22, 2025", "Dec 22" and the same
	// with a weekday prefix ("Sat, Dec 27") or an "Opens on" prefix; the
	// month token is validated against the lookup table so weekday names
	// and filler words are skipped over.
	monthDayPattern = regexp.MustCompile(`([A-Za-z]+)\.?\s+(\d{1,2})(?:\s*,\s*(\d{4}))?`)
)

// ParseDate converts free-text date representations into canonical
// "YYYY-MM-DD". Supported shapes: "December 22, 2025", "Dec 22",
// "Sat, Dec 27", "Opens on January 2", and ISO "2025-12-22" pass-through.
//
// When the year is omitted it is inferred relative to ref: a month earlier
// than ref's month rolls over to the next calendar year, so a "Jan 2"
// listing scraped in December resolves to January of the following year.
// ref is injected rather than read from the clock so parsing is
// deterministic in tests. Returns ok=false when no month token matches.
func ParseDate(raw string, ref time.Time) (string, bool) {
	if m := isoPattern.FindStringSubmatch(raw); m != nil {
		return m[0], true
	}

	for _, m := range monthDayPattern.FindAllStringSubmatch(raw, -1) {
		month, known := months[strings.ToLower(m[1])]
		if !known {
			continue
		}

		day, err := strconv.Atoi(m[2])
		if err != nil || day < 1 || day > 31 {
			continue
		}

		var year int
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		} else {
			year = ref.Year()
			if month < int(ref.Month()) {
				year++
			}
		}

		return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
	}

	return "", false
}

// Today formats a reference instant as "YYYY-MM-DD" in the given location.
// The aggregator computes this once per run and passes it down, keeping
// clock reads out of the filtering logic.
func Today(now time.Time, loc *time.Location) string {
	return now.In(loc).Format("2006-01-02")
}
