package screening

// Dedupe collapses screenings that resolve to the same identity key. The
// first occurrence wins, later ones are discarded even when their poster or
// ticket link differ, and first-seen order is preserved. The function is
// pure: no seen-state survives across calls.
//
// The same physical showing can appear twice from one venue (a "now
// playing" list and an "upcoming" list), so dedup runs per venue before the
// merge. The key includes the venue, so identical-looking entries from
// different venues can never collide.
func Dedupe(in []Screening) []Screening {
	seen := make(map[string]bool, len(in))
	out := make([]Screening, 0, len(in))

	for _, s := range in {
		k := s.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}

	return out
}
