// Package storage persists the merged screening feed. The snapshot file is
// the sole contract with the static front end, so a write either fully
// replaces the previous snapshot or leaves it intact; the front end never
// sees a partial feed.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dcfilmcal/screenings/internal/screening"
)

// Storage handles persistence of feed snapshots
type Storage struct {
	path string
}

// New creates a Storage writing to the given snapshot path, creating the
// parent directory if needed.
func New(path string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{path: path}, nil
}

// Path returns the snapshot location.
func (s *Storage) Path() string {
	return s.path
}

// Write persists the feed atomically: the JSON is written to a temp file
// in the same directory and renamed into place, so a failure part-way
// leaves the previous snapshot valid on disk.
func (s *Storage) Write(feed screening.Feed) error {
	data, err := json.MarshalIndent(feed, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".screenings-*.json")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing snapshot: %w", err)
	}

	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("setting snapshot permissions: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing snapshot: %w", err)
	}

	return nil
}

// Load reads the current snapshot from disk. A missing file returns an
// empty feed rather than an error.
func (s *Storage) Load() (*screening.Feed, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &screening.Feed{Screenings: []screening.Screening{}}, nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var feed screening.Feed
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	if feed.Screenings == nil {
		feed.Screenings = []screening.Screening{}
	}

	return &feed, nil
}
