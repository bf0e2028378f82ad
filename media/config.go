package media

// Config holds clip store initialization parameters.
type Config struct {
	Path string `json:"path,omitempty" env:"NEXUS_MEDIA_PATH"` // FileStore root; empty disables disk persistence.
}

// DefaultConfig returns the default media configuration (memory only).
func DefaultConfig() Config {
	return Config{}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Path != "" {
		c.Path = source.Path
	}
}

// NewStore creates a Store from configuration. Returns a nil Store when
// Path is empty, indicating clips stay in memory only.
func NewStore(cfg *Config) Store {
	if cfg.Path == "" {
		return nil
	}
	return NewFileStore(cfg.Path)
}
