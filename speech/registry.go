package speech

import (
	"fmt"
	"sync"

	"github.com/file-command-nexus/nexus/media"
)

// Factory constructs an Engine from configuration. The clip cache may be
// nil when media persistence is disabled; factories that do not cache
// ignore it.
type Factory func(cfg *Config, clips *media.Cache) (Engine, error)

var (
	factories = map[string]Factory{
		"noop":    func(*Config, *media.Cache) (Engine, error) { return NoopEngine{}, nil },
		"command": newCommandEngine,
	}
	factoriesMu sync.RWMutex
)

// Register adds a named engine factory to the global registry.
// Returns ErrEngineExists if the name is already taken.
// Thread-safe for concurrent registration.
func Register(name string, factory Factory) error {
	if name == "" {
		return ErrEmptyName
	}

	factoriesMu.Lock()
	defer factoriesMu.Unlock()

	if _, exists := factories[name]; exists {
		return fmt.Errorf("%w: %s", ErrEngineExists, name)
	}
	factories[name] = factory
	return nil
}

// New creates an Engine by registered name.
// Pre-registered engines: "command" (external synthesizer/player found on
// PATH) and "noop" (discards all playback).
func New(name string, cfg *Config, clips *media.Cache) (Engine, error) {
	factoriesMu.RLock()
	factory, exists := factories[name]
	factoriesMu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, name)
	}
	return factory(cfg, clips)
}
