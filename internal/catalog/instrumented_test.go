package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/kdimtricp/reelmatch/internal/logging"
	"github.com/kdimtricp/reelmatch/internal/models"
)

type memoryRecorder struct {
	entries []*models.FetchLogEntry
	err     error
}

func (m *memoryRecorder) RecordFetch(ctx context.Context, entry *models.FetchLogEntry) error {
	m.entries = append(m.entries, entry)
	return m.err
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name     string
		movies   []models.Movie
		err      error
		expected string
	}{
		{name: "records", movies: []models.Movie{{ID: 1}}, expected: OutcomeOK},
		{name: "empty page", expected: OutcomeEmpty},
		{name: "unavailable", err: fmt.Errorf("%w: status 500", ErrCatalogUnavailable), expected: OutcomeUnavailable},
		{name: "breaker open", err: fmt.Errorf("%w: %w", ErrCatalogUnavailable, gobreaker.ErrOpenState), expected: OutcomeRejected},
		{name: "bad language", err: models.ErrUnsupportedLanguage, expected: OutcomeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Outcome(tt.movies, tt.err); got != tt.expected {
				t.Errorf("Outcome() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestInstrumentedClient_RecordsFetch(t *testing.T) {
	stub := &stubFetcher{movies: []models.Movie{{ID: 1}, {ID: 2}}}
	rec := &memoryRecorder{}
	client := NewInstrumentedClient(stub, rec)

	ctx := logging.ContextWithRequestID(context.Background(), "req-42")
	movies, err := client.Discover(ctx, models.Hindi)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(movies))
	}
	if len(rec.entries) != 1 {
		t.Fatalf("expected 1 fetch log entry, got %d", len(rec.entries))
	}

	entry := rec.entries[0]
	if entry.RequestID != "req-42" || entry.Language != "hi" || entry.Outcome != OutcomeOK || entry.RecordCount != 2 {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if entry.Error != "" {
		t.Errorf("expected no error text, got %q", entry.Error)
	}
}

func TestInstrumentedClient_RecorderFailureIsNotFatal(t *testing.T) {
	stub := &stubFetcher{err: ErrCatalogUnavailable}
	rec := &memoryRecorder{err: errors.New("disk full")}
	client := NewInstrumentedClient(stub, rec)

	_, err := client.Discover(context.Background(), models.Telugu)
	if !errors.Is(err, ErrCatalogUnavailable) {
		t.Fatalf("expected upstream error to pass through, got %v", err)
	}
	if len(rec.entries) != 1 || rec.entries[0].Outcome != OutcomeUnavailable {
		t.Errorf("unexpected entries: %+v", rec.entries)
	}
}

func TestInstrumentedClient_NilRecorder(t *testing.T) {
	client := NewInstrumentedClient(&stubFetcher{}, nil)
	if _, err := client.Discover(context.Background(), models.English); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
