package speech

import "context"

// NoopEngine discards all playback. Used when speech is disabled and as
// the fallback when no synthesizer is available.
type NoopEngine struct{}

func (NoopEngine) Voices(ctx context.Context) ([]Voice, error) { return nil, nil }

func (NoopEngine) Speak(ctx context.Context, u Utterance) error { return nil }

func (NoopEngine) Cancel() error { return nil }
