package session

import "sync"

type memoryRegistry struct {
	mu      sync.RWMutex
	current Session
	present bool
}

// NewMemoryRegistry creates an empty in-memory Registry. State lives for
// the process lifetime only; there is no persistence across restarts.
func NewMemoryRegistry() Registry {
	return &memoryRegistry{}
}

func (r *memoryRegistry) Set(s Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = s
	r.present = true
}

func (r *memoryRegistry) Get() (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current, r.present
}

func (r *memoryRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = Session{}
	r.present = false
}
