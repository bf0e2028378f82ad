package speech

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/file-command-nexus/nexus/observability"
)

// Speech event types emitted by the playback controller.
const (
	EventPlay              observability.EventType = "speech.play"
	EventResume            observability.EventType = "speech.resume"
	EventStop              observability.EventType = "speech.stop"
	EventError             observability.EventType = "speech.error"
	EventVoicesUnavailable observability.EventType = "speech.voices.unavailable"
)

const voicesTimeout = 5 * time.Second

// Controller owns the single live utterance derived from the result
// ledger. Sync is keyed on the ledger revision: a changed revision with
// speak-worthy text replaces the current utterance and begins playback
// automatically; a changed revision with no text cancels playback and
// drops the handle. The previous utterance is never invoked again.
//
// Playback failures degrade to silence; nothing here ever propagates an
// error into the command flow.
type Controller struct {
	engine    Engine
	preferred string
	rate      string
	observer  observability.Observer

	mu            sync.Mutex
	voice         Voice
	voiceResolved bool
	current       *Utterance
	revision      uint64
	synced        bool
}

// NewController creates a playback Controller over the given engine.
func NewController(engine Engine, cfg *Config, observer observability.Observer) *Controller {
	if engine == nil {
		engine = NoopEngine{}
	}
	if observer == nil {
		observer = observability.NoOpObserver{}
	}
	return &Controller{
		engine:    engine,
		preferred: cfg.PreferredVoice,
		rate:      cfg.Rate,
		observer:  observer,
	}
}

// Sync reconciles playback with the ledger head. text is the stdout of
// the most recently appended record, empty when the ledger is empty.
// Revisions already seen are ignored, so repeated calls are cheap.
func (c *Controller) Sync(text string, revision uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.synced && revision == c.revision {
		return
	}
	c.revision = revision
	c.synced = true

	if strings.TrimSpace(text) == "" {
		c.current = nil
		_ = c.engine.Cancel()
		c.emit(EventStop, observability.LevelVerbose, map[string]any{"reason": "empty ledger"})
		return
	}

	u := Utterance{Text: text, Voice: c.resolveVoiceLocked(), Rate: c.rate}
	c.current = &u

	if err := c.engine.Speak(context.Background(), u); err != nil {
		c.emit(EventError, observability.LevelWarning, map[string]any{"error": err.Error()})
		return
	}
	c.emit(EventPlay, observability.LevelVerbose, map[string]any{
		"text_length": len(u.Text),
		"voice":       u.Voice,
	})
}

// Resume speaks the current utterance again from the start. The
// underlying engines cannot pause mid-utterance, so resuming means
// re-speaking. A no-op when no utterance is live.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return
	}
	if err := c.engine.Speak(context.Background(), *c.current); err != nil {
		c.emit(EventError, observability.LevelWarning, map[string]any{"error": err.Error()})
		return
	}
	c.emit(EventResume, observability.LevelVerbose, map[string]any{"text_length": len(c.current.Text)})
}

// Stop cancels in-flight playback immediately. The current utterance
// stays live so Resume can replay it.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.engine.Cancel()
	c.emit(EventStop, observability.LevelVerbose, nil)
}

// Current returns the live utterance, reporting whether one exists.
func (c *Controller) Current() (Utterance, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return Utterance{}, false
	}
	return *c.current, true
}

// resolveVoiceLocked enumerates voices once and applies the preferred
// voice match. Enumeration failure falls back to the engine default and
// never surfaces to the caller. Caller holds c.mu.
func (c *Controller) resolveVoiceLocked() string {
	if c.voiceResolved {
		return c.voice.Name
	}
	c.voiceResolved = true

	ctx, cancel := context.WithTimeout(context.Background(), voicesTimeout)
	defer cancel()

	voices, err := c.engine.Voices(ctx)
	if err != nil {
		c.emit(EventVoicesUnavailable, observability.LevelWarning, map[string]any{"error": err.Error()})
		return ""
	}
	if v, ok := SelectVoice(voices, c.preferred); ok {
		c.voice = v
	}
	return c.voice.Name
}

func (c *Controller) emit(t observability.EventType, level observability.Level, data map[string]any) {
	c.observer.OnEvent(context.Background(), observability.Event{
		Type:      t,
		Level:     level,
		Timestamp: time.Now(),
		Source:    "speech.Controller",
		Data:      data,
	})
}
