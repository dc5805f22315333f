package models

import (
	"errors"
	"time"
)

// ErrRecordNotFound is returned when a record is not found in the store.
var ErrRecordNotFound = errors.New("record not found")

// HistoryEntry is the persisted summary of one comparison. Only metadata and
// stats are kept; the op script itself is never stored.
type HistoryEntry struct {
	ID          int64
	LeftPath    string
	RightPath   string
	LeftHash    string
	RightHash   string
	Mode        Mode
	Stats       Stats
	ChangeCount int
	DurationMs  int64
	ComparedAt  time.Time
}

// NewHistoryEntry summarises result for the history store.
func NewHistoryEntry(leftPath, rightPath, leftHash, rightHash string, result *ComparisonResult, duration time.Duration) HistoryEntry {
	return HistoryEntry{
		LeftPath:    leftPath,
		RightPath:   rightPath,
		LeftHash:    leftHash,
		RightHash:   rightHash,
		Mode:        result.Mode,
		Stats:       result.Stats,
		ChangeCount: len(result.ChangeItems),
		DurationMs:  duration.Milliseconds(),
		ComparedAt:  time.Now().UTC(),
	}
}

// HistoryStore persists comparison summaries.
type HistoryStore interface {
	RecordComparison(entry HistoryEntry) (int64, error)
	ListRecent(limit int) ([]HistoryEntry, error)
	Close() error
}
