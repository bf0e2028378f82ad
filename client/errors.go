package client

import "errors"

// ErrUnreachable wraps transport-level failures: the boundary never
// produced a response at all.
var ErrUnreachable = errors.New("boundary unreachable")

// BoundaryError is a failure the boundary itself reported, either as a
// non-success status or as a response without a usable payload. Message
// carries the boundary's own text when one was provided.
type BoundaryError struct {
	Message string
}

func (e *BoundaryError) Error() string {
	return e.Message
}
