// Package settings persists the few player preferences that survive a restart.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file used when none is configured.
const DefaultPath = "tehon.yaml"

// Settings is the persisted player state.
type Settings struct {
	// FirstPlay is true until the help screen has been shown once.
	FirstPlay bool `yaml:"firstPlay"`
}

// Default returns the settings of a fresh install.
func Default() Settings {
	return Settings{FirstPlay: true}
}

// Load reads settings from a YAML file. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	s := Default()

	b, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings: %w", err)
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Default(), fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	return s, nil
}

// Save writes settings to a YAML file, replacing any previous contents.
func Save(path string, s Settings) error {
	b, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(filepath.Clean(path), b, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// Store is a settings file the game reads and writes through.
type Store struct {
	Path string
}

// FirstPlay reports whether this is the first play. Unreadable settings count
// as a first play.
func (st Store) FirstPlay() bool {
	s, err := Load(st.Path)
	if err != nil {
		return true
	}
	return s.FirstPlay
}

// SetFirstPlay records the first-play flag.
func (st Store) SetFirstPlay(first bool) error {
	s, err := Load(st.Path)
	if err != nil {
		s = Default()
	}
	s.FirstPlay = first
	return Save(st.Path, s)
}
