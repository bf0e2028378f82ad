// Package speech derives spoken playback from the result ledger. At most
// one utterance is live at any time; it is replaced, never mutated, when
// the ledger changes.
package speech

import (
	"context"
	"strings"
)

// Voice identifies one synthesis voice offered by an engine. The zero
// Voice means "engine default".
type Voice struct {
	Name     string
	Language string
}

// Utterance is a single unit of synthesized speech: one text bound to
// one voice. Immutable once constructed.
type Utterance struct {
	Text  string
	Voice string
	Rate  string
}

// Engine is the platform speech boundary. Speak begins playback and
// returns promptly; audio completes in the background. Implementations
// must be safe for concurrent use.
type Engine interface {
	// Voices enumerates the available synthesis voices. An empty list is
	// a valid result, not an error.
	Voices(ctx context.Context) ([]Voice, error)
	// Speak cancels any in-flight playback and begins speaking u.
	Speak(ctx context.Context, u Utterance) error
	// Cancel stops any in-flight playback immediately.
	Cancel() error
}

// SelectVoice picks the first voice whose name contains preferred,
// case-insensitively. An empty preference or no match yields the zero
// Voice, meaning the engine default is used.
func SelectVoice(voices []Voice, preferred string) (Voice, bool) {
	if preferred == "" {
		return Voice{}, false
	}
	needle := strings.ToLower(preferred)
	for _, v := range voices {
		if strings.Contains(strings.ToLower(v.Name), needle) {
			return v, true
		}
	}
	return Voice{}, false
}
