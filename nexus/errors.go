package nexus

import "errors"

// Validation and single-flight errors surfaced before any network
// activity. All are user-facing and non-retryable.
var (
	ErrNoSession       = errors.New("no active session")
	ErrEmptyCommand    = errors.New("command is empty")
	ErrUploadInFlight  = errors.New("upload already in progress")
	ErrExecuteInFlight = errors.New("execution already in progress")
)
