package ledger

import (
	"slices"
	"sync"
)

type memoryLedger struct {
	mu       sync.RWMutex
	records  []Record
	revision uint64
}

// NewMemoryLedger creates an empty Ledger backed by an in-memory slice.
func NewMemoryLedger() Ledger {
	return &memoryLedger{}
}

func (l *memoryLedger) Append(rec Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
	l.revision++
}

func (l *memoryLedger) Records() []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.records)
}

func (l *memoryLedger) Head() (Record, uint64, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.records) == 0 {
		return Record{}, l.revision, false
	}
	return l.records[len(l.records)-1], l.revision, true
}

func (l *memoryLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

func (l *memoryLedger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = nil
	l.revision++
}

func (l *memoryLedger) Revision() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.revision
}
