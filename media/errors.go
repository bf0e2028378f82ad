package media

import "errors"

// Sentinel errors for clip store operations.
var (
	ErrKeyNotFound = errors.New("clip not found")
	ErrLoadFailed  = errors.New("clip load failed")
	ErrSaveFailed  = errors.New("clip save failed")
)
