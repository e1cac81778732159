package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLogger_Log(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "venue scraped",
			fields:  Fields{"venue": "suns"},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "candidate dropped",
			want:    false, // won't log (below INFO)
		},
		{
			name:    "warn message",
			level:   LevelWarn,
			message: "adapter returned nothing",
			want:    true,
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "adapter failed",
			err:     errors.New("connection refused"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(LevelInfo, &buf)

			logger.log(tt.level, tt.message, tt.fields, tt.err)

			logged := buf.Len() > 0
			if logged != tt.want {
				t.Errorf("log() logged = %v, want %v", logged, tt.want)
			}

			if !logged {
				return
			}

			var entry LogEntry
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("output is not valid JSON: %v", err)
			}
			if entry.Message != tt.message {
				t.Errorf("entry.Message = %q, want %q", entry.Message, tt.message)
			}
			if tt.err != nil && !strings.Contains(entry.Error, tt.err.Error()) {
				t.Errorf("entry.Error = %q, want it to contain %q", entry.Error, tt.err.Error())
			}
		})
	}
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("candidates.suns", 12)
	m.IncrCounter("candidates.suns", 3)
	m.RecordTiming("fetch.suns", 100*time.Millisecond)
	m.RecordTiming("fetch.suns", 300*time.Millisecond)

	snapshot := m.GetSnapshot()

	counters, ok := snapshot["counters"].(map[string]int64)
	if !ok {
		t.Fatal("snapshot missing counters map")
	}
	if counters["candidates.suns"] != 15 {
		t.Errorf("counter = %d, want 15", counters["candidates.suns"])
	}

	timings, ok := snapshot["timings"].(map[string]map[string]interface{})
	if !ok {
		t.Fatal("snapshot missing timings map")
	}
	stats, exists := timings["fetch.suns"]
	if !exists {
		t.Fatal("expected fetch.suns timing stats")
	}
	if stats["count"] != 2 {
		t.Errorf("timing count = %v, want 2", stats["count"])
	}
	if stats["average"] != "200ms" {
		t.Errorf("timing average = %v, want 200ms", stats["average"])
	}
}
