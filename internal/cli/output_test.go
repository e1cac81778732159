package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dcfilmcal/screenings/internal/screening"
)

func TestWriteOutput_Text(t *testing.T) {
	result := &OutputResult{
		GeneratedAt:    time.Date(2025, 12, 20, 12, 0, 0, 0, time.UTC),
		SnapshotPath:   "/tmp/screenings.json",
		VenueCount:     5,
		ScreeningCount: 12,
		FirstDate:      "2025-12-20",
		LastDate:       "2026-01-04",
	}

	var buf bytes.Buffer
	if err := WriteOutput(&buf, result, FormatText); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "12 screenings from 5 venues") {
		t.Errorf("missing summary line, got:\n%s", out)
	}
	if !strings.Contains(out, "2025-12-20 through 2026-01-04") {
		t.Errorf("missing coverage line, got:\n%s", out)
	}
}

func TestWriteOutput_TextEmpty(t *testing.T) {
	result := &OutputResult{VenueCount: 5, SnapshotPath: "/tmp/screenings.json"}

	var buf bytes.Buffer
	if err := WriteOutput(&buf, result, FormatText); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No upcoming screenings") {
		t.Errorf("expected empty-run message, got:\n%s", buf.String())
	}
}

func TestWriteOutput_JSON(t *testing.T) {
	result := &OutputResult{
		GeneratedAt:    time.Date(2025, 12, 20, 12, 0, 0, 0, time.UTC),
		SnapshotPath:   "/tmp/screenings.json",
		VenueCount:     2,
		ScreeningCount: 3,
	}

	var buf bytes.Buffer
	if err := WriteOutput(&buf, result, FormatJSON); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["screening_count"].(float64) != 3 {
		t.Errorf("screening_count = %v, want 3", decoded["screening_count"])
	}
}

func TestWriteOutput_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, &OutputResult{}, OutputFormat("yaml")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestWriteFeed_TextGroupsByDate(t *testing.T) {
	feed := &screening.Feed{
		LastUpdated: "2025-12-20T12:00:00Z",
		Screenings: []screening.Screening{
			{Title: "First Film", Venue: "Avalon Theatre", Date: "2025-12-20", Time: "17:15"},
			{Title: "Second Film", Venue: "Suns Cinema", Date: "2025-12-20", Time: "19:00"},
			{Title: "Third Film", Venue: "Suns Cinema", Date: "2025-12-21", Time: "19:00"},
		},
	}

	var buf bytes.Buffer
	if err := WriteFeed(&buf, feed, FormatText); err != nil {
		t.Fatalf("WriteFeed() error = %v", err)
	}

	out := buf.String()
	if strings.Count(out, "2025-12-20:") != 1 {
		t.Errorf("date header should appear once per date, got:\n%s", out)
	}
	if !strings.Contains(out, "17:15  First Film (Avalon Theatre)") {
		t.Errorf("missing screening line, got:\n%s", out)
	}
}

func TestWriteFeed_JSONKeepsContract(t *testing.T) {
	feed := &screening.Feed{
		LastUpdated: "2025-12-20T12:00:00Z",
		Screenings: []screening.Screening{
			{Title: "A Film", Venue: "Suns Cinema", Date: "2025-12-20", Time: "19:00"},
		},
	}

	var buf bytes.Buffer
	if err := WriteFeed(&buf, feed, FormatJSON); err != nil {
		t.Fatalf("WriteFeed() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"lastUpdated"`) || !strings.Contains(out, `"screenings"`) {
		t.Errorf("JSON output missing contract fields, got:\n%s", out)
	}
	if !strings.Contains(out, `"poster": null`) {
		t.Errorf("absent poster should serialize as null, got:\n%s", out)
	}
}
