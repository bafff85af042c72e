package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/kdimtricp/reelmatch/internal/models"
	"github.com/kdimtricp/reelmatch/internal/validation"
)

type recommendQuery struct {
	Title string `query:"title" validate:"required,max=500"`
	N     int    `query:"n" validate:"min=1,max=20"`
}

type historyQuery struct {
	Limit int `query:"limit" validate:"min=1,max=200"`
}

// languageParam defaults to the first selectable language when absent.
func languageParam(r *http.Request) (models.Language, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("language"))
	if raw == "" {
		return models.Languages()[0], nil
	}
	return models.ParseLanguage(raw)
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}

func (app *App) parseRecommendQuery(r *http.Request) (models.Language, recommendQuery, error) {
	lang, err := languageParam(r)
	if err != nil {
		return "", recommendQuery{}, err
	}
	n, err := intParam(r, "n", app.TopN)
	if err != nil {
		return "", recommendQuery{}, err
	}
	q := recommendQuery{
		Title: strings.TrimSpace(r.URL.Query().Get("title")),
		N:     n,
	}
	if err := validation.ValidateStruct(q); err != nil {
		return "", recommendQuery{}, err
	}
	return lang, q, nil
}

func parseHistoryQuery(r *http.Request) (historyQuery, error) {
	limit, err := intParam(r, "limit", 20)
	if err != nil {
		return historyQuery{}, err
	}
	q := historyQuery{Limit: limit}
	if err := validation.ValidateStruct(q); err != nil {
		return historyQuery{}, err
	}
	return q, nil
}
