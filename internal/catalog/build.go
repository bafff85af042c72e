package catalog

import "github.com/kdimtricp/reelmatch/internal/config"

// NewFromConfig assembles the production fetcher chain: the TMDb client
// behind a circuit breaker, wrapped with logging, metrics and the optional
// fetch log.
func NewFromConfig(cfg config.TMDBConfig, recorder FetchRecorder) *InstrumentedClient {
	client := NewTMDbClient(cfg.APIKey,
		WithBaseURL(cfg.BaseURL),
		WithTimeout(cfg.Timeout),
	)
	return NewInstrumentedClient(NewBreakerClient(client, DefaultBreakerSettings()), recorder)
}
