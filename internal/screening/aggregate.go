package screening

import (
	"sort"
	"time"
)

// Aggregate merges per-venue screening lists into a single feed: past
// screenings are filtered out, the rest are sorted ascending by date then
// time, and the result is stamped with the run's generation timestamp.
//
// Both comparisons are plain string compares, which is correct because the
// formats are fixed ("YYYY-MM-DD", "HH:MM"). The sort is stable so entries
// with equal keys keep their insertion order.
func Aggregate(perVenue [][]Screening, today string, now time.Time) Feed {
	var merged []Screening
	for _, vs := range perVenue {
		merged = append(merged, vs...)
	}

	kept := merged[:0]
	for _, s := range merged {
		if s.Date >= today {
			kept = append(kept, s)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Date != kept[j].Date {
			return kept[i].Date < kept[j].Date
		}
		return kept[i].Time < kept[j].Time
	})

	// Never marshal a nil slice; the front end expects an array.
	if kept == nil {
		kept = []Screening{}
	}

	return Feed{
		LastUpdated: timestamp(now),
		Screenings:  kept,
	}
}
