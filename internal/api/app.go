package api

import (
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/kdimtricp/reelmatch/internal/catalog"
	"github.com/kdimtricp/reelmatch/internal/config"
	"github.com/kdimtricp/reelmatch/internal/models"
)

//go:embed templates/*.html templates/partials/*.html
var templateFS embed.FS

// FetchLogReader lists recent catalog calls. Nil when the fetch log is
// disabled.
type FetchLogReader interface {
	ListRecent(ctx context.Context, limit int) ([]models.FetchLogEntry, error)
}

type App struct {
	Catalog  catalog.Fetcher
	FetchLog FetchLogReader

	TopN          int
	PosterSize    string
	OverviewChars int
	ImageBaseURL  string

	templates *template.Template
}

func NewApp(fetcher catalog.Fetcher, fetchLog FetchLogReader, cfg *config.Config) (*App, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &App{
		Catalog:       fetcher,
		FetchLog:      fetchLog,
		TopN:          cfg.Recommend.TopN,
		PosterSize:    cfg.Recommend.PosterSize,
		OverviewChars: cfg.Recommend.OverviewChars,
		ImageBaseURL:  cfg.TMDB.ImageBaseURL,
		templates:     tmpl,
	}, nil
}

func parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"alert": func(kind, message string) alertData {
			return alertData{Kind: kind, Message: message}
		},
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tmpl, nil
}

func (app *App) cardOptions() cardOptions {
	return cardOptions{
		ImageBaseURL:  app.ImageBaseURL,
		PosterSize:    app.PosterSize,
		OverviewChars: app.OverviewChars,
	}
}
