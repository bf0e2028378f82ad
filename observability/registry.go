package observability

import (
	"fmt"
	"log/slog"
	"sync"
)

var (
	observers = map[string]Observer{
		"noop": NoOpObserver{},
		"slog": NewSlogObserver(slog.Default()),
	}
	observersMu sync.RWMutex
)

// GetObserver returns a registered observer by name. Pre-registered:
// "noop" and "slog" (default logger).
func GetObserver(name string) (Observer, error) {
	observersMu.RLock()
	defer observersMu.RUnlock()

	obs, exists := observers[name]
	if !exists {
		return nil, fmt.Errorf("unknown observer: %s", name)
	}
	return obs, nil
}

// RegisterObserver adds or replaces a named observer in the global
// registry.
func RegisterObserver(name string, observer Observer) {
	observersMu.Lock()
	defer observersMu.Unlock()

	observers[name] = observer
}
