package models

import (
	"time"

	"github.com/google/uuid"
)

// FetchLogEntry describes one catalog call. It never carries the fetched
// records themselves.
type FetchLogEntry struct {
	ID          string
	RequestID   string
	Language    string
	Outcome     string
	RecordCount int
	LatencyMS   int64
	Error       string
	FetchedAt   time.Time
}

func NewFetchLogEntry(requestID, language, outcome string, recordCount int, latency time.Duration, fetchErr error) *FetchLogEntry {
	entry := &FetchLogEntry{
		ID:          uuid.New().String(),
		RequestID:   requestID,
		Language:    language,
		Outcome:     outcome,
		RecordCount: recordCount,
		LatencyMS:   latency.Milliseconds(),
		FetchedAt:   time.Now().UTC(),
	}
	if fetchErr != nil {
		entry.Error = fetchErr.Error()
	}
	return entry
}
