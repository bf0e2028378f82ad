package nexus

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/file-command-nexus/nexus/client"
	"github.com/file-command-nexus/nexus/media"
	"github.com/file-command-nexus/nexus/speech"
)

const defaultObserver = "slog"

// Config holds initialization parameters for all controller subsystems.
// Each subsystem section delegates to that subsystem's config-driven
// constructor.
type Config struct {
	Client   client.Config `json:"client"`
	Speech   speech.Config `json:"speech"`
	Media    media.Config  `json:"media"`
	Observer string        `json:"observer,omitempty" env:"NEXUS_OBSERVER"`
}

// DefaultConfig returns a Config with sensible defaults for all
// subsystems.
func DefaultConfig() Config {
	return Config{
		Client:   client.DefaultConfig(),
		Speech:   speech.DefaultConfig(),
		Media:    media.DefaultConfig(),
		Observer: defaultObserver,
	}
}

// Merge applies non-zero values from source into c, delegating to each
// subsystem's Merge method.
func (c *Config) Merge(source *Config) {
	c.Client.Merge(&source.Client)
	c.Speech.Merge(&source.Speech)
	c.Media.Merge(&source.Media)

	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

// LoadConfig reads a JSON config file, merges it with defaults, and
// returns the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}

// FromEnv overlays NEXUS_* environment variables onto c. Environment
// values take precedence over file values.
func (c *Config) FromEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
