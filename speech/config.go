package speech

const (
	defaultEngine = "command"
	defaultRate   = "+0%"
)

// Config holds speech playback initialization parameters.
type Config struct {
	Engine         string `json:"engine,omitempty" env:"NEXUS_SPEECH_ENGINE"`
	PreferredVoice string `json:"preferred_voice,omitempty" env:"NEXUS_PREFERRED_VOICE"`
	Rate           string `json:"rate,omitempty" env:"NEXUS_SPEECH_RATE"`
	Disabled       bool   `json:"disabled,omitempty" env:"NEXUS_SPEECH_DISABLED"`
}

// DefaultConfig returns the default speech configuration.
func DefaultConfig() Config {
	return Config{
		Engine: defaultEngine,
		Rate:   defaultRate,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Engine != "" {
		c.Engine = source.Engine
	}
	if source.PreferredVoice != "" {
		c.PreferredVoice = source.PreferredVoice
	}
	if source.Rate != "" {
		c.Rate = source.Rate
	}
	if source.Disabled {
		c.Disabled = true
	}
}
