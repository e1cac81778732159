package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dcfilmcal/screenings/internal/parse"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if conf.Timezone != "America/New_York" {
		t.Errorf("Timezone = %q, want America/New_York", conf.Timezone)
	}
	if len(conf.Venues) == 0 {
		t.Fatal("default config has no venues")
	}

	ids := make(map[string]bool)
	for _, v := range conf.Venues {
		ids[v.ID] = true
		if !v.Enabled {
			t.Errorf("default venue %s should be enabled", v.ID)
		}
	}
	for _, want := range []string{"suns", "avalon", "angelika", "alamo", "nga", "miracle"} {
		if !ids[want] {
			t.Errorf("default venue table missing %s", want)
		}
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
output: /tmp/out.json
adapter_timeout_seconds: 15
venues:
  - id: suns
    name: Suns Cinema
    url: https://sunscinema.com/
    enabled: true
    ampm: fixed-default
    default_time: "20:30"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if conf.Output != "/tmp/out.json" {
		t.Errorf("Output = %q, want override", conf.Output)
	}
	if conf.AdapterTimeoutSec != 15 {
		t.Errorf("AdapterTimeoutSec = %d, want 15", conf.AdapterTimeoutSec)
	}
	// Timezone was not set in the file; default applies.
	if conf.Timezone != "America/New_York" {
		t.Errorf("Timezone = %q, want default", conf.Timezone)
	}
	if len(conf.Venues) != 1 {
		t.Fatalf("Venues = %d entries, want 1", len(conf.Venues))
	}

	conv := conf.Venues[0].Convention()
	if conv.Kind != parse.FixedDefault || conv.Default != "20:30" {
		t.Errorf("Convention() = %+v, want fixed-default 20:30", conv)
	}
}

func TestVenue_ConventionDefaults(t *testing.T) {
	v := Venue{AmPm: "evening-below-ten"}
	if conv := v.Convention(); conv.Kind != parse.AssumeEveningBelowTen {
		t.Errorf("Convention() = %+v, want evening-below-ten", conv)
	}

	// Fixed-default with no time falls back to the shared evening default.
	v = Venue{AmPm: "fixed-default"}
	if conv := v.Convention(); conv.Default != "19:00" {
		t.Errorf("Convention() default = %q, want 19:00", conv.Default)
	}
}
