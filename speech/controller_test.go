package speech_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/file-command-nexus/nexus/speech"
)

// recordingEngine captures Speak and Cancel calls for assertions.
type recordingEngine struct {
	mu       sync.Mutex
	voices   []speech.Voice
	voiceErr error
	speakErr error
	spoken   []speech.Utterance
	cancels  int
}

func (e *recordingEngine) Voices(ctx context.Context) ([]speech.Voice, error) {
	return e.voices, e.voiceErr
}

func (e *recordingEngine) Speak(ctx context.Context, u speech.Utterance) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.speakErr != nil {
		return e.speakErr
	}
	e.spoken = append(e.spoken, u)
	return nil
}

func (e *recordingEngine) Cancel() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancels++
	return nil
}

func (e *recordingEngine) spokenTexts() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	texts := make([]string, len(e.spoken))
	for i, u := range e.spoken {
		texts[i] = u.Text
	}
	return texts
}

func newTestController(engine speech.Engine) *speech.Controller {
	cfg := speech.DefaultConfig()
	return speech.NewController(engine, &cfg, nil)
}

func TestControllerSyncSpeaks(t *testing.T) {
	engine := &recordingEngine{}
	c := newTestController(engine)

	c.Sync("the answer", 1)

	texts := engine.spokenTexts()
	if len(texts) != 1 || texts[0] != "the answer" {
		t.Fatalf("spoken = %v, want [\"the answer\"]", texts)
	}

	current, ok := c.Current()
	if !ok {
		t.Fatal("Current() returned ok = false after Sync")
	}
	if current.Text != "the answer" {
		t.Errorf("Current().Text = %q, want %q", current.Text, "the answer")
	}
}

func TestControllerSyncSameRevisionIgnored(t *testing.T) {
	engine := &recordingEngine{}
	c := newTestController(engine)

	c.Sync("the answer", 1)
	c.Sync("the answer", 1)
	c.Sync("the answer", 1)

	if got := len(engine.spokenTexts()); got != 1 {
		t.Errorf("Speak called %d times for one revision, want 1", got)
	}
}

func TestControllerSyncNewRevisionReplaces(t *testing.T) {
	engine := &recordingEngine{}
	c := newTestController(engine)

	c.Sync("first answer", 1)
	c.Sync("second answer", 2)

	texts := engine.spokenTexts()
	want := []string{"first answer", "second answer"}
	if len(texts) != len(want) {
		t.Fatalf("spoken = %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("spoken[%d] = %q, want %q", i, texts[i], want[i])
		}
	}

	current, _ := c.Current()
	if current.Text != "second answer" {
		t.Errorf("Current().Text = %q, want %q", current.Text, "second answer")
	}
}

func TestControllerSyncEmptyCancels(t *testing.T) {
	engine := &recordingEngine{}
	c := newTestController(engine)

	c.Sync("the answer", 1)
	c.Sync("", 2)

	if engine.cancels == 0 {
		t.Error("Cancel was not called for an empty sync")
	}
	if _, ok := c.Current(); ok {
		t.Error("Current() returned ok = true after empty sync, want false")
	}
}

func TestControllerResume(t *testing.T) {
	engine := &recordingEngine{}
	c := newTestController(engine)

	c.Sync("the answer", 1)
	c.Stop()
	c.Resume()

	texts := engine.spokenTexts()
	if len(texts) != 2 {
		t.Fatalf("Speak called %d times, want 2 (initial + resume)", len(texts))
	}
	if texts[1] != "the answer" {
		t.Errorf("resumed text = %q, want %q", texts[1], "the answer")
	}
}

func TestControllerResumeWithoutUtterance(t *testing.T) {
	engine := &recordingEngine{}
	c := newTestController(engine)

	c.Resume()

	if got := len(engine.spokenTexts()); got != 0 {
		t.Errorf("Speak called %d times with no utterance, want 0", got)
	}
}

func TestControllerStopKeepsCurrent(t *testing.T) {
	engine := &recordingEngine{}
	c := newTestController(engine)

	c.Sync("the answer", 1)
	c.Stop()

	if engine.cancels != 1 {
		t.Errorf("Cancel called %d times, want 1", engine.cancels)
	}
	if _, ok := c.Current(); !ok {
		t.Error("Current() returned ok = false after Stop, want true")
	}
}

func TestControllerPreferredVoice(t *testing.T) {
	engine := &recordingEngine{
		voices: []speech.Voice{
			{Name: "Alex", Language: "en-US"},
			{Name: "en-US-AriaNeural", Language: "en-US"},
		},
	}
	cfg := speech.DefaultConfig()
	cfg.PreferredVoice = "aria"
	c := speech.NewController(engine, &cfg, nil)

	c.Sync("the answer", 1)

	spoken := engine.spoken
	if len(spoken) != 1 {
		t.Fatalf("Speak called %d times, want 1", len(spoken))
	}
	if spoken[0].Voice != "en-US-AriaNeural" {
		t.Errorf("Voice = %q, want %q", spoken[0].Voice, "en-US-AriaNeural")
	}
}

func TestControllerVoiceEnumerationFailure(t *testing.T) {
	engine := &recordingEngine{voiceErr: errors.New("no synthesizer")}
	cfg := speech.DefaultConfig()
	cfg.PreferredVoice = "aria"
	c := speech.NewController(engine, &cfg, nil)

	c.Sync("the answer", 1)

	spoken := engine.spoken
	if len(spoken) != 1 {
		t.Fatalf("Speak called %d times, want 1", len(spoken))
	}
	if spoken[0].Voice != "" {
		t.Errorf("Voice = %q, want engine default (empty)", spoken[0].Voice)
	}
}

func TestControllerSpeakFailureKeepsCurrent(t *testing.T) {
	engine := &recordingEngine{speakErr: errors.New("player missing")}
	c := newTestController(engine)

	c.Sync("the answer", 1)

	if _, ok := c.Current(); !ok {
		t.Error("Current() returned ok = false after failed Speak, want true")
	}
}
