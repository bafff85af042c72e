package api

import (
	"github.com/kdimtricp/reelmatch/internal/catalog"
	"github.com/kdimtricp/reelmatch/internal/models"
)

const (
	msgCatalogUnavailable = "Could not reach the movie catalog. Try again or check the API key."
	msgNoRecommendations  = "No recommendations found."
	msgNoMovies           = "No movies found. Try changing the language or API key."
)

// MovieCard is the rendered form of one recommended movie.
type MovieCard struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Year      string `json:"year"`
	Overview  string `json:"overview"`
	PosterURL string `json:"poster_url,omitempty"`
	TMDbURL   string `json:"tmdb_url"`
}

type cardOptions struct {
	ImageBaseURL  string
	PosterSize    string
	OverviewChars int
}

func newMovieCard(m models.Movie, opts cardOptions) MovieCard {
	year := m.ReleaseYear()
	if year == "" {
		year = "N/A"
	}
	return MovieCard{
		ID:        m.ID,
		Title:     m.Title,
		Year:      year,
		Overview:  truncate(m.Overview, opts.OverviewChars) + "...",
		PosterURL: catalog.ImageURL(opts.ImageBaseURL, opts.PosterSize, m.PosterPath),
		TMDbURL:   catalog.MovieURL(m.ID),
	}
}

func newMovieCards(movies []models.Movie, opts cardOptions) []MovieCard {
	cards := make([]MovieCard, len(movies))
	for i, m := range movies {
		cards[i] = newMovieCard(m, opts)
	}
	return cards
}

// truncate keeps the first n runes of s.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

type languageOption struct {
	Code     string
	Name     string
	Selected bool
}

type alertData struct {
	Kind    string
	Message string
}

type pageData struct {
	Title           string
	Languages       []languageOption
	Language        string
	Titles          []string
	SelectedTitle   string
	TopN            int
	Error           string
	Warning         string
	Notice          string
	Searched        bool
	Recommendations []MovieCard
}

func newPageData(lang models.Language, topN int) *pageData {
	options := make([]languageOption, 0, len(models.Languages()))
	for _, l := range models.Languages() {
		options = append(options, languageOption{Code: l.Code(), Name: l.Name(), Selected: l == lang})
	}
	return &pageData{
		Title:     "Movie Recommendations",
		Languages: options,
		Language:  lang.Code(),
		TopN:      topN,
	}
}

func movieTitles(movies []models.Movie) []string {
	titles := make([]string, len(movies))
	for i, m := range movies {
		titles[i] = m.Title
	}
	return titles
}
