package game

import (
	"os"
	"strconv"

	"github.com/samdwyer/tehon/internal/settings"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible fights and enemy movement.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// SettingsPath is the YAML file holding the first play flag.
	SettingsPath string

	// Audio enables the speaker. When false, or when the speaker cannot be
	// opened, the game runs silent.
	Audio bool
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		SettingsPath: settings.DefaultPath,
		Audio:        true,
	}
}

// ConfigFromEnv reads TEHON_SEED, TEHON_SETTINGS and TEHON_AUDIO over the
// defaults. Unparseable values keep the default.
func ConfigFromEnv() Config {
	return configFrom(os.Getenv)
}

func configFrom(getenv func(string) string) Config {
	cfg := DefaultConfig()

	if v := getenv("TEHON_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	if v := getenv("TEHON_SETTINGS"); v != "" {
		cfg.SettingsPath = v
	}
	if v := getenv("TEHON_AUDIO"); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			cfg.Audio = on
		}
	}
	return cfg
}
