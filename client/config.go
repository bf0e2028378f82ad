package client

import "time"

const (
	defaultServerURL      = "http://localhost:5000"
	defaultTimeoutSeconds = 30
)

// Config holds boundary client initialization parameters.
type Config struct {
	ServerURL      string `json:"server_url,omitempty" env:"NEXUS_SERVER_URL"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" env:"NEXUS_TIMEOUT"`
}

// DefaultConfig returns the default boundary client configuration.
func DefaultConfig() Config {
	return Config{
		ServerURL:      defaultServerURL,
		TimeoutSeconds: defaultTimeoutSeconds,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.ServerURL != "" {
		c.ServerURL = source.ServerURL
	}
	if source.TimeoutSeconds > 0 {
		c.TimeoutSeconds = source.TimeoutSeconds
	}
}

// Timeout returns the per-request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
