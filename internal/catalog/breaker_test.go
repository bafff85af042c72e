package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/kdimtricp/reelmatch/internal/models"
)

type stubFetcher struct {
	movies []models.Movie
	err    error
	calls  int
}

func (s *stubFetcher) Discover(ctx context.Context, lang models.Language) ([]models.Movie, error) {
	s.calls++
	return s.movies, s.err
}

func testBreakerSettings(name string) BreakerSettings {
	return BreakerSettings{
		Name:                name,
		ConsecutiveFailures: 2,
		OpenTimeout:         time.Minute,
		HalfOpenRequests:    1,
	}
}

func TestBreakerClient_OpensAfterConsecutiveFailures(t *testing.T) {
	stub := &stubFetcher{err: ErrCatalogUnavailable}
	client := NewBreakerClient(stub, testBreakerSettings("test-open"))

	for i := 0; i < 2; i++ {
		if _, err := client.Discover(context.Background(), models.Telugu); !errors.Is(err, ErrCatalogUnavailable) {
			t.Fatalf("call %d: expected ErrCatalogUnavailable, got %v", i, err)
		}
	}
	if client.State() != gobreaker.StateOpen {
		t.Fatalf("expected open breaker, got %s", client.State())
	}

	_, err := client.Discover(context.Background(), models.Telugu)
	if !errors.Is(err, ErrCatalogUnavailable) {
		t.Errorf("expected open breaker to report ErrCatalogUnavailable, got %v", err)
	}
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected open breaker error to wrap ErrOpenState, got %v", err)
	}
	if stub.calls != 2 {
		t.Errorf("expected upstream to be skipped while open, got %d calls", stub.calls)
	}
}

func TestBreakerClient_BadInputDoesNotTrip(t *testing.T) {
	stub := &stubFetcher{err: models.ErrUnsupportedLanguage}
	client := NewBreakerClient(stub, testBreakerSettings("test-bad-input"))

	for i := 0; i < 5; i++ {
		_, err := client.Discover(context.Background(), models.Language("xx"))
		if !errors.Is(err, models.ErrUnsupportedLanguage) {
			t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
		}
	}
	if client.State() != gobreaker.StateClosed {
		t.Errorf("expected closed breaker, got %s", client.State())
	}
}

func TestBreakerClient_PassesThroughResults(t *testing.T) {
	stub := &stubFetcher{movies: []models.Movie{{ID: 1, Title: "A"}}}
	client := NewBreakerClient(stub, testBreakerSettings("test-pass"))

	movies, err := client.Discover(context.Background(), models.English)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 1 || movies[0].Title != "A" {
		t.Errorf("unexpected movies: %+v", movies)
	}
}
