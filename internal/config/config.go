// Package config loads the aggregator's YAML configuration: output
// location, reference timezone, and the per-venue table of sources and
// time conventions.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dcfilmcal/screenings/internal/parse"
)

// Venue describes one listings source and its tuned parsing policy.
type Venue struct {
	// ID is the internal identifier used for dedup keys and logging.
	ID string `yaml:"id"`

	// Name is the human-readable venue name stamped onto screenings.
	Name string `yaml:"name"`

	// URL is the listings page (or feed) endpoint.
	URL string `yaml:"url"`

	// Enabled toggles the venue without removing its policy entry.
	Enabled bool `yaml:"enabled"`

	// AmPm resolves times without an explicit meridiem marker. One of
	// "evening-below-ten" or "fixed-default". Venue listings that omit
	// markers for evening-only programming need this tuned per venue; a
	// global rule misclassifies matinees.
	AmPm string `yaml:"ampm"`

	// DefaultTime is the substituted "HH:MM" for fixed-default venues.
	DefaultTime string `yaml:"default_time"`
}

// Convention translates the venue's YAML policy into a parse convention.
func (v Venue) Convention() parse.Convention {
	switch v.AmPm {
	case string(parse.FixedDefault):
		def := v.DefaultTime
		if def == "" {
			def = "19:00"
		}
		return parse.Convention{Kind: parse.FixedDefault, Default: def}
	default:
		return parse.Convention{Kind: parse.AssumeEveningBelowTen}
	}
}

// Config is the top-level application configuration.
type Config struct {
	// Output is the snapshot file path consumed by the front end.
	Output string `yaml:"output"`

	// Timezone is the IANA reference timezone for "today" (the listings
	// are for a single city, so one zone governs the whole feed).
	Timezone string `yaml:"timezone"`

	// AdapterTimeoutSec bounds each venue adapter's fetch, including any
	// headless-browser session.
	AdapterTimeoutSec int `yaml:"adapter_timeout_seconds"`

	// EnrichCacheTTLHours is how long TMDB lookups are reused within the
	// enrichment cache.
	EnrichCacheTTLHours int `yaml:"enrich_cache_ttl_hours"`

	// Venues is the per-venue source and convention table.
	Venues []Venue `yaml:"venues"`
}

// Default returns the built-in configuration, seeded with the venue
// conventions as originally tuned against each site's listings.
func Default() *Config {
	return &Config{
		Output:              "data/screenings.json",
		Timezone:            "America/New_York",
		AdapterTimeoutSec:   60,
		EnrichCacheTTLHours: 24 * 7,
		Venues: []Venue{
			{
				ID:          "suns",
				Name:        "Suns Cinema",
				URL:         "https://sunscinema.com/",
				Enabled:     true,
				AmPm:        string(parse.FixedDefault),
				DefaultTime: "19:00",
			},
			{
				ID:      "avalon",
				Name:    "Avalon Theater",
				URL:     "https://www.theavalon.org/",
				Enabled: true,
				AmPm:    string(parse.AssumeEveningBelowTen),
			},
			{
				ID:      "angelika",
				Name:    "Angelika Pop-Up at Union Market",
				URL:     "https://angelikafilmcenter.com/dc/now-playing",
				Enabled: true,
				AmPm:    string(parse.AssumeEveningBelowTen),
			},
			{
				ID:      "alamo",
				Name:    "Alamo Drafthouse Bryant St",
				URL:     "https://drafthouse.com/dc/film",
				Enabled: true,
				AmPm:    string(parse.AssumeEveningBelowTen),
			},
			{
				ID:      "nga",
				Name:    "National Gallery of Art",
				URL:     "https://www.nga.gov/calendar?type%5B103026%5D=103026&tab=all",
				Enabled: true,
				// NGA listings always carry explicit a.m./p.m. markers.
				AmPm: string(parse.AssumeEveningBelowTen),
			},
			{
				ID:          "miracle",
				Name:        "Miracle Theatre",
				URL:         "https://themiracletheatre.com/feed/",
				Enabled:     true,
				AmPm:        string(parse.FixedDefault),
				DefaultTime: "19:00",
			},
		},
	}
}

// Load reads the YAML config at path, applying defaults for anything the
// file leaves unset. A missing file is not an error: the defaults cover a
// stock run.
func Load(path string) (*Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return conf, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if conf.Output == "" {
		conf.Output = Default().Output
	}
	if conf.Timezone == "" {
		conf.Timezone = Default().Timezone
	}
	if conf.AdapterTimeoutSec <= 0 {
		conf.AdapterTimeoutSec = Default().AdapterTimeoutSec
	}
	if conf.EnrichCacheTTLHours <= 0 {
		conf.EnrichCacheTTLHours = Default().EnrichCacheTTLHours
	}
	if len(conf.Venues) == 0 {
		conf.Venues = Default().Venues
	}

	return conf, nil
}

// Location resolves the configured reference timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// AdapterTimeout returns the per-adapter fetch bound as a duration.
func (c *Config) AdapterTimeout() time.Duration {
	return time.Duration(c.AdapterTimeoutSec) * time.Second
}
