// Package ledger maintains the ordered in-memory record of command
// results for the current session.
package ledger

import "time"

// Result is the outcome payload of one executed command. ReturnCode 0
// signals success for display purposes regardless of whether Stderr is
// populated.
type Result struct {
	Stdout     string `json:"stdout"`
	Stderr     string `json:"stderr"`
	ReturnCode int    `json:"returncode"`
}

// Record is one immutable command/result entry.
type Record struct {
	Question  string    `json:"question"`
	Result    Result    `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}

// Ledger holds an append-only ordered sequence of records, oldest first.
// The only mutation besides Append is a full Clear. Implementations must
// be safe for concurrent use.
type Ledger interface {
	// Append adds a record after all existing ones.
	Append(rec Record)
	// Records returns a defensive copy of all records, oldest first.
	Records() []Record
	// Head returns the most recently appended record together with the
	// revision it was observed at, reporting whether the ledger is
	// non-empty. Record and revision are read under one lock so a
	// caller never pairs a record with a revision from a different
	// ledger state.
	Head() (Record, uint64, bool)
	// Len returns the number of records.
	Len() int
	// Clear removes all records.
	Clear()
	// Revision returns a counter that increments on every Append and
	// Clear. Consumers that derive state from the ledger key on it to
	// detect changes.
	Revision() uint64
}
