package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/kdimtricp/reelmatch/internal/logging"
	"github.com/kdimtricp/reelmatch/internal/models"
	"github.com/kdimtricp/reelmatch/internal/recommend"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type fetchLogItem struct {
	ID          string `json:"id"`
	RequestID   string `json:"request_id,omitempty"`
	Language    string `json:"language"`
	Outcome     string `json:"outcome"`
	RecordCount int    `json:"record_count"`
	LatencyMS   int64  `json:"latency_ms"`
	Error       string `json:"error,omitempty"`
	FetchedAt   string `json:"fetched_at"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Error encoding JSON response")
	}
}

func writeJSONError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, r, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// writeFetchError maps a catalog error to 400 for bad input and 502 for
// everything upstream.
func (app *App) writeFetchError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, models.ErrUnsupportedLanguage) {
		writeJSONError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	app.logFetchFailure(r, err)
	writeJSONError(w, r, http.StatusBadGateway, "catalog_unavailable", msgCatalogUnavailable)
}

func HealthzHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// MoviesAPIHandler returns the fetched page for a language as cards, in
// catalog order.
func (app *App) MoviesAPIHandler(w http.ResponseWriter, r *http.Request) {
	lang, err := languageParam(r)
	if err != nil {
		writeJSONError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	movies, err := app.Catalog.Discover(r.Context(), lang)
	if err != nil {
		app.writeFetchError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, newMovieCards(movies, app.cardOptions()))
}

func (app *App) RecommendationsAPIHandler(w http.ResponseWriter, r *http.Request) {
	lang, q, err := app.parseRecommendQuery(r)
	if err != nil {
		writeJSONError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	movies, err := app.Catalog.Discover(r.Context(), lang)
	if err != nil {
		app.writeFetchError(w, r, err)
		return
	}

	recs := recommend.Recommend(movies, q.Title, q.N)
	writeJSON(w, r, http.StatusOK, newMovieCards(recs, app.cardOptions()))
}

func (app *App) FetchLogAPIHandler(w http.ResponseWriter, r *http.Request) {
	if app.FetchLog == nil {
		writeJSONError(w, r, http.StatusNotFound, "fetch_log_disabled", "The fetch log is not enabled.")
		return
	}

	q, err := parseHistoryQuery(r)
	if err != nil {
		writeJSONError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	entries, err := app.FetchLog.ListRecent(r.Context(), q.Limit)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to list fetch log")
		writeJSONError(w, r, http.StatusInternalServerError, "internal", "Could not load the fetch log.")
		return
	}

	items := make([]fetchLogItem, len(entries))
	for i, e := range entries {
		items[i] = fetchLogItem{
			ID:          e.ID,
			RequestID:   e.RequestID,
			Language:    e.Language,
			Outcome:     e.Outcome,
			RecordCount: e.RecordCount,
			LatencyMS:   e.LatencyMS,
			Error:       e.Error,
			FetchedAt:   e.FetchedAt.UTC().Format(time.RFC3339),
		}
	}
	writeJSON(w, r, http.StatusOK, items)
}
