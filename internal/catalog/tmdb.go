package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/kdimtricp/reelmatch/internal/models"
)

const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"

	maxResponseBytes = 4 << 20
)

// Fetcher returns one page of popular movies for a language.
type Fetcher interface {
	Discover(ctx context.Context, lang models.Language) ([]models.Movie, error)
}

type TMDbClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ Fetcher = (*TMDbClient)(nil)

type DiscoverResult struct {
	Page         int             `json:"page"`
	Results      *[]models.Movie `json:"results"`
	TotalResults int             `json:"total_results"`
}

type Option func(*TMDbClient)

func WithHTTPClient(client *http.Client) Option {
	return func(c *TMDbClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func WithBaseURL(baseURL string) Option {
	return func(c *TMDbClient) {
		if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *TMDbClient) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

func NewTMDbClient(apiKey string, opts ...Option) *TMDbClient {
	c := &TMDbClient{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Discover fetches the first page of movies whose original language is lang,
// most popular first, in the order the server returns them.
func (c *TMDbClient) Discover(ctx context.Context, lang models.Language) ([]models.Movie, error) {
	if !lang.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrUnsupportedLanguage, string(lang))
	}

	endpoint, err := url.Parse(c.baseURL + "/discover/movie")
	if err != nil {
		return nil, fmt.Errorf("parse tmdb url: %w", err)
	}
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("with_original_language", lang.Code())
	params.Set("sort_by", "popularity.desc")
	params.Set("page", "1")
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("%w: executing request (latency=%v): %w", ErrCatalogUnavailable, latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: tmdb discover returned status %d (latency=%v)", ErrCatalogUnavailable, resp.StatusCode, latency)
	}

	var result DiscoverResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %w", ErrCatalogUnavailable, err)
	}
	if result.Results == nil {
		return nil, fmt.Errorf("%w: response has no results field", ErrCatalogUnavailable)
	}

	return *result.Results, nil
}
