package parse

import (
	"testing"
	"time"
)

func ref(year int, month time.Month) time.Time {
	return time.Date(year, month, 15, 12, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ref  time.Time
		want string
	}{
		{
			name: "full month with year",
			raw:  "December 22, 2025",
			ref:  ref(2025, time.December),
			want: "2025-12-22",
		},
		{
			name: "abbreviated month same year",
			raw:  "Dec 22",
			ref:  ref(2025, time.December),
			want: "2025-12-22",
		},
		{
			name: "year rollover at boundary",
			raw:  "Jan 2",
			ref:  ref(2025, time.December),
			want: "2026-01-02",
		},
		{
			name: "weekday prefix",
			raw:  "Sat, Dec 27",
			ref:  ref(2025, time.December),
			want: "2025-12-27",
		},
		{
			name: "weekday prefix with extra spaces",
			raw:  "Wed,  Jan 1",
			ref:  ref(2025, time.December),
			want: "2026-01-01",
		},
		{
			name: "opens-on prefix",
			raw:  "Opens on January 2",
			ref:  ref(2025, time.December),
			want: "2026-01-02",
		},
		{
			name: "iso pass-through",
			raw:  "2025-12-22",
			ref:  ref(2025, time.June),
			want: "2025-12-22",
		},
		{
			name: "future month stays in reference year",
			raw:  "Nov 22",
			ref:  ref(2025, time.March),
			want: "2025-11-22",
		},
		{
			name: "abbreviated month with trailing period",
			raw:  "Dec. 5",
			ref:  ref(2025, time.October),
			want: "2025-12-05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.raw, tt.ref)
			if !ok {
				t.Fatalf("ParseDate(%q) failed, want %q", tt.raw, tt.want)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseDate_Failures(t *testing.T) {
	tests := []string{
		"",
		"Coming Soon",
		"Members only 7",
		"Foo 12", // unrecognized month token
	}

	for _, raw := range tests {
		if got, ok := ParseDate(raw, ref(2025, time.December)); ok {
			t.Errorf("ParseDate(%q) = %q, want failure", raw, got)
		}
	}
}

func TestToday(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}

	// 03:30 UTC on Jan 2 is still Jan 1 in DC.
	now := time.Date(2026, time.January, 2, 3, 30, 0, 0, time.UTC)
	if got := Today(now, loc); got != "2026-01-01" {
		t.Errorf("Today() = %q, want %q", got, "2026-01-01")
	}
}
