// Package history stores past URL assessments for display. The scoring
// engine never reads or writes this store; callers append the
// (url, classification, score) triple after each assessment.
package history

import (
	"context"
	"errors"
	"time"
)

// Capacity is the maximum number of retained entries. Appending beyond
// it evicts the oldest entry.
const Capacity = 50

// ErrNotFound is returned when removing an entry that does not exist.
var ErrNotFound = errors.New("history: entry not found")

// Entry is one recorded assessment.
type Entry struct {
	ID             string    `json:"id"`
	URL            string    `json:"url"`
	Classification string    `json:"classification"`
	RiskScore      int       `json:"risk_score"`
	Timestamp      time.Time `json:"timestamp"`
}

// Repository stores entries newest-first with FIFO eviction at
// Capacity.
type Repository interface {
	// Append records an entry, assigns its ID, and evicts the oldest
	// entry when the store is full.
	Append(ctx context.Context, entry Entry) (Entry, error)

	// List returns all retained entries, newest first.
	List(ctx context.Context) ([]Entry, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error

	// Remove deletes the entry with the given id, returning ErrNotFound
	// when no such entry exists.
	Remove(ctx context.Context, id string) error
}
