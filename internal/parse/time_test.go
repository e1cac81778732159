package parse

import "testing"

func TestParseTime_ExplicitMeridiem(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "midnight edge 12 AM",
			raw:  "12:00 AM",
			want: "00:00",
		},
		{
			name: "noon edge 12 PM",
			raw:  "12:00 PM",
			want: "12:00",
		},
		{
			name: "evening PM",
			raw:  "7:05 PM",
			want: "19:05",
		},
		{
			name: "late morning AM",
			raw:  "11:59 AM",
			want: "11:59",
		},
		{
			name: "lowercase pm",
			raw:  "7:30 pm",
			want: "19:30",
		},
		{
			name: "dotted meridiem",
			raw:  "2:00 p.m.",
			want: "14:00",
		},
		{
			name: "dotted am",
			raw:  "10:15 a.m.",
			want: "10:15",
		},
		{
			name: "time range keeps first time",
			raw:  "2:00 p.m. – 3:45 p.m.",
			want: "14:00",
		},
		{
			name: "embedded in surrounding text",
			raw:  "Doors at 6:30 PM",
			want: "18:30",
		},
	}

	// Convention is irrelevant when a marker is present
	conv := Convention{Kind: AssumeEveningBelowTen}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTime(tt.raw, conv)
			if !ok {
				t.Fatalf("ParseTime(%q) failed, want %q", tt.raw, tt.want)
			}
			if got != tt.want {
				t.Errorf("ParseTime(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseTime_EveningBelowTenConvention(t *testing.T) {
	conv := Convention{Kind: AssumeEveningBelowTen}

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare 7:00 assumed evening",
			raw:  "7:00",
			want: "19:00",
		},
		{
			name: "bare 9:45 assumed evening",
			raw:  "9:45",
			want: "21:45",
		},
		{
			name: "bare 10:30 assumed matinee",
			raw:  "10:30",
			want: "10:30",
		},
		{
			name: "bare 11:00 assumed matinee",
			raw:  "11:00",
			want: "11:00",
		},
		{
			name: "already 24-hour passes through",
			raw:  "19:30",
			want: "19:30",
		},
		{
			name: "midnight passes through",
			raw:  "0:15",
			want: "00:15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTime(tt.raw, conv)
			if !ok {
				t.Fatalf("ParseTime(%q) failed, want %q", tt.raw, tt.want)
			}
			if got != tt.want {
				t.Errorf("ParseTime(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseTime_FixedDefault(t *testing.T) {
	conv := Convention{Kind: FixedDefault, Default: "19:00"}

	// No time text at all: the venue default applies.
	got, ok := ParseTime("", conv)
	if !ok || got != "19:00" {
		t.Errorf("ParseTime(\"\") = %q, %v; want %q, true", got, ok, "19:00")
	}

	// Ambiguous bare time: the default still wins.
	got, ok = ParseTime("8:00", conv)
	if !ok || got != "19:00" {
		t.Errorf("ParseTime(\"8:00\") = %q, %v; want %q, true", got, ok, "19:00")
	}

	// An explicit marker overrides the default.
	got, ok = ParseTime("8:00 PM", conv)
	if !ok || got != "20:00" {
		t.Errorf("ParseTime(\"8:00 PM\") = %q, %v; want %q, true", got, ok, "20:00")
	}
}

func TestParseTime_Failures(t *testing.T) {
	conv := Convention{Kind: AssumeEveningBelowTen}

	tests := []string{
		"",
		"no showtimes listed",
		"Sold Out",
		"7 PM", // no colon-separated minutes
	}

	for _, raw := range tests {
		if got, ok := ParseTime(raw, conv); ok {
			t.Errorf("ParseTime(%q) = %q, want failure", raw, got)
		}
	}
}
