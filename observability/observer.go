// Package observability provides event-based observability for the
// client's upload/execute/speech lifecycle. Level values align with
// OpenTelemetry SeverityNumbers so events forward to OTel collectors
// without translation.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// Level represents event severity aligned with OTel SeverityNumber ranges.
type Level int

const (
	LevelVerbose Level = 5  // OTel DEBUG (5-8)
	LevelInfo    Level = 9  // OTel INFO (9-12)
	LevelWarning Level = 13 // OTel WARN (13-16)
	LevelError   Level = 17 // OTel ERROR (17-20)
)

// SlogLevel maps the level to the corresponding slog.Level for emission.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l <= 8:
		return slog.LevelDebug
	case l <= 12:
		return slog.LevelInfo
	case l <= 16:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// EventType identifies the kind of event. Each subsystem defines its own
// constants using this type (e.g. "nexus.execute.start", "speech.play").
type EventType string

// Event is one observability event. Source names the emitting component;
// Data carries event-specific attributes.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// Observer receives events from subsystems for logging, tracing, or
// metrics. Implementations must not block the caller.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}
