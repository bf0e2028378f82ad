package speech

import "errors"

// Sentinel errors for the engine registry.
var (
	ErrUnknownEngine = errors.New("unknown speech engine")
	ErrEngineExists  = errors.New("speech engine already registered")
	ErrEmptyName     = errors.New("speech engine name is empty")
	ErrNoSynthesizer = errors.New("no speech synthesizer found on PATH")
)
