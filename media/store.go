// Package media stores synthesized speech clips so playback can be
// repeated without re-synthesis. Keys are /-separated relative paths
// derived from the utterance digest. The store holds derived audio
// artifacts only; session and result state is never persisted.
package media

import "context"

// Entry is one stored clip: a key and its raw audio bytes.
type Entry struct {
	Key   string
	Value []byte
}

// Store translates between external storage and the clip namespace.
// Implementations are stateless and perform I/O on each call.
type Store interface {
	// List returns all clip keys currently in the store.
	List(ctx context.Context) ([]string, error)
	// Load retrieves entries for the specified keys.
	Load(ctx context.Context, keys ...string) ([]Entry, error)
	// Save persists entries, creating or overwriting as needed.
	Save(ctx context.Context, entries ...Entry) error
	// Delete removes entries. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}
