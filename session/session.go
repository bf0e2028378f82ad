// Package session holds the single live upload session for the client.
package session

// Session binds a server-issued identifier to the uploaded file it
// scopes. A Session exists only after a successful upload; there is at
// most one live Session at a time.
type Session struct {
	ID       string
	FileName string
}

// Registry is a single-slot holder of the current session. Implementations
// must be safe for concurrent use.
type Registry interface {
	// Set replaces the current session unconditionally.
	Set(s Session)
	// Get returns the current session, reporting whether one exists.
	Get() (Session, bool)
	// Clear returns the registry to the absent state.
	Clear()
}
