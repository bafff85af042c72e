package catalog

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/kdimtricp/reelmatch/internal/logging"
	"github.com/kdimtricp/reelmatch/internal/metrics"
	"github.com/kdimtricp/reelmatch/internal/models"
)

const (
	OutcomeOK          = "ok"
	OutcomeEmpty       = "empty"
	OutcomeUnavailable = "unavailable"
	OutcomeRejected    = "rejected"
	OutcomeInvalid     = "invalid"
)

// FetchRecorder persists call metadata for the fetch log.
type FetchRecorder interface {
	RecordFetch(ctx context.Context, entry *models.FetchLogEntry) error
}

// InstrumentedClient logs, measures and optionally records every Discover call.
type InstrumentedClient struct {
	next     Fetcher
	recorder FetchRecorder
}

var _ Fetcher = (*InstrumentedClient)(nil)

// NewInstrumentedClient accepts a nil recorder when the fetch log is disabled.
func NewInstrumentedClient(next Fetcher, recorder FetchRecorder) *InstrumentedClient {
	return &InstrumentedClient{next: next, recorder: recorder}
}

func (c *InstrumentedClient) Discover(ctx context.Context, lang models.Language) ([]models.Movie, error) {
	start := time.Now()
	movies, err := c.next.Discover(ctx, lang)
	latency := time.Since(start)

	outcome := Outcome(movies, err)
	label := lang.Code()
	if !lang.Valid() {
		label = "other"
	}
	metrics.RecordCatalogFetch(label, outcome, latency)

	event := logging.Ctx(ctx).Info()
	if err != nil {
		event = logging.Ctx(ctx).Warn().Err(err)
	}
	event.Str("language", lang.Code()).
		Str("outcome", outcome).
		Int("records", len(movies)).
		Dur("latency", latency).
		Msg("Catalog fetch")

	if c.recorder != nil {
		entry := models.NewFetchLogEntry(logging.RequestIDFromContext(ctx), lang.Code(), outcome, len(movies), latency, err)
		if recErr := c.recorder.RecordFetch(context.WithoutCancel(ctx), entry); recErr != nil {
			logging.Ctx(ctx).Warn().Err(recErr).Msg("Failed to record catalog fetch")
		}
	}

	return movies, err
}

// Outcome classifies a Discover result for metrics and the fetch log.
func Outcome(movies []models.Movie, err error) string {
	switch {
	case err == nil && len(movies) > 0:
		return OutcomeOK
	case err == nil:
		return OutcomeEmpty
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return OutcomeRejected
	case errors.Is(err, models.ErrUnsupportedLanguage):
		return OutcomeInvalid
	default:
		return OutcomeUnavailable
	}
}
