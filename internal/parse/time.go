package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ConventionKind selects how a time string lacking an explicit AM/PM marker
// is resolved. Conventions are tuned per venue: some venues omit meridiem
// markers for evening-only programming, and a single global heuristic would
// misclassify matinees vs. evening shows.
type ConventionKind string

const (
	// AssumeEveningBelowTen treats bare hours 1-9 as PM and 10-11 as AM.
	// Hour 0 or >= 13 passes through unchanged (already 24-hour-like).
	AssumeEveningBelowTen ConventionKind = "evening-below-ten"

	// FixedDefault ignores the raw text entirely and substitutes a fixed
	// default time. Used when a venue's listing carries no time at all
	// (e.g. "opens on" announcements).
	FixedDefault ConventionKind = "fixed-default"
)

// Convention is a per-venue policy for resolving times without an explicit
// AM/PM marker.
type Convention struct {
	Kind ConventionKind

	// Default is the substituted "HH:MM" value for FixedDefault.
	Default string
}

// timePattern matches a H:MM or HH:MM substring optionally followed by a
// meridiem marker in any of the forms AM, PM, am, pm, a.m., p.m.
var timePattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(a\.?m\.?|p\.?m\.?)?`)

// ParseTime converts free-text time representations into 24-hour "HH:MM".
// Supported inputs: "7:05 PM", "11:59 am", "2:00 p.m.", "19:30", "7:00".
//
// With an explicit marker, standard 12-to-24 conversion applies (12 PM
// stays 12, 12 AM becomes 0). Without one, the venue convention decides.
// Returns ok=false when no time can be extracted; callers drop the
// candidate rather than fail the run.
func ParseTime(raw string, conv Convention) (string, bool) {
	match := timePattern.FindStringSubmatch(raw)
	if match == nil {
		// A FixedDefault venue has no time information to begin with.
		if conv.Kind == FixedDefault && conv.Default != "" {
			return conv.Default, true
		}
		return "", false
	}

	hours, err := strconv.Atoi(match[1])
	if err != nil || hours > 23 {
		return "", false
	}
	minutes := match[2]
	if m, err := strconv.Atoi(minutes); err != nil || m > 59 {
		return "", false
	}

	meridiem := strings.ToLower(strings.ReplaceAll(match[3], ".", ""))
	switch meridiem {
	case "pm":
		if hours != 12 {
			hours += 12
		}
	case "am":
		if hours == 12 {
			hours = 0
		}
	default:
		// No marker; apply the venue convention.
		switch conv.Kind {
		case FixedDefault:
			if conv.Default != "" {
				return conv.Default, true
			}
			return "", false
		case AssumeEveningBelowTen:
			if hours >= 1 && hours <= 9 {
				hours += 12
			}
		}
	}

	if hours > 23 {
		return "", false
	}

	return fmt.Sprintf("%02d:%s", hours, minutes), true
}
