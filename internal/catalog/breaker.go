package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/kdimtricp/reelmatch/internal/logging"
	"github.com/kdimtricp/reelmatch/internal/metrics"
	"github.com/kdimtricp/reelmatch/internal/models"
)

// BreakerSettings tunes when the breaker opens and how long it stays open.
type BreakerSettings struct {
	Name                string
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
	HalfOpenRequests    uint32
}

func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:                "tmdb-discover",
		ConsecutiveFailures: 5,
		OpenTimeout:         30 * time.Second,
		HalfOpenRequests:    1,
	}
}

// BreakerClient fails fast with ErrCatalogUnavailable while the upstream is
// known to be down. It never retries.
type BreakerClient struct {
	next Fetcher
	cb   *gobreaker.CircuitBreaker[[]models.Movie]
	name string
}

var _ Fetcher = (*BreakerClient)(nil)

func NewBreakerClient(next Fetcher, s BreakerSettings) *BreakerClient {
	metrics.CircuitBreakerState.WithLabelValues(s.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]models.Movie](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: s.HalfOpenRequests,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			trip := counts.ConsecutiveFailures >= s.ConsecutiveFailures
			if trip {
				logging.Warn().
					Str("breaker", s.Name).
					Uint32("consecutive_failures", counts.ConsecutiveFailures).
					Msg("Opening catalog circuit")
			}
			return trip
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("Circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
		// Bad input and callers going away say nothing about upstream health.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, models.ErrUnsupportedLanguage) ||
				errors.Is(err, context.Canceled)
		},
	})

	return &BreakerClient{next: next, cb: cb, name: s.Name}
}

func (b *BreakerClient) Discover(ctx context.Context, lang models.Language) ([]models.Movie, error) {
	movies, err := b.cb.Execute(func() ([]models.Movie, error) {
		return b.next.Discover(ctx, lang)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %s: %w", ErrCatalogUnavailable, b.name, err)
		}
		return nil, err
	}
	return movies, nil
}

func (b *BreakerClient) State() gobreaker.State {
	return b.cb.State()
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
