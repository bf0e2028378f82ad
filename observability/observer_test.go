package observability_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/file-command-nexus/nexus/observability"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []observability.Event
}

func (r *recordingObserver) OnEvent(ctx context.Context, event observability.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func TestLevelSlogLevel(t *testing.T) {
	tests := []struct {
		level observability.Level
		want  slog.Level
	}{
		{observability.LevelVerbose, slog.LevelDebug},
		{observability.LevelInfo, slog.LevelInfo},
		{observability.LevelWarning, slog.LevelWarn},
		{observability.LevelError, slog.LevelError},
	}

	for _, tt := range tests {
		if got := tt.level.SlogLevel(); got != tt.want {
			t.Errorf("Level(%d).SlogLevel() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestMultiObserverFanOut(t *testing.T) {
	a := &recordingObserver{}
	b := &recordingObserver{}
	m := observability.NewMultiObserver(a, b)

	event := observability.Event{
		Type:      "upload.complete",
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "test",
	}
	m.OnEvent(context.Background(), event)

	if len(a.events) != 1 || len(b.events) != 1 {
		t.Fatalf("fan-out delivered %d/%d events, want 1/1", len(a.events), len(b.events))
	}
	if a.events[0].Type != "upload.complete" {
		t.Errorf("Type = %q, want %q", a.events[0].Type, "upload.complete")
	}
}

func TestGetObserverBuiltins(t *testing.T) {
	for _, name := range []string{"noop", "slog"} {
		observer, err := observability.GetObserver(name)
		if err != nil {
			t.Errorf("GetObserver(%q) error = %v", name, err)
		}
		if observer == nil {
			t.Errorf("GetObserver(%q) returned nil observer", name)
		}
	}
}

func TestGetObserverUnknown(t *testing.T) {
	if _, err := observability.GetObserver("telepathy"); err == nil {
		t.Error("GetObserver(\"telepathy\") returned nil error, want error")
	}
}

func TestRegisterObserver(t *testing.T) {
	custom := &recordingObserver{}
	observability.RegisterObserver("recording-test", custom)

	got, err := observability.GetObserver("recording-test")
	if err != nil {
		t.Fatalf("GetObserver() after register error = %v", err)
	}
	if got != observability.Observer(custom) {
		t.Error("GetObserver() returned a different observer than registered")
	}
}
