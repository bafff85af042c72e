package api

import (
	"errors"
	"net/http"

	"github.com/kdimtricp/reelmatch/internal/catalog"
	"github.com/kdimtricp/reelmatch/internal/logging"
	"github.com/kdimtricp/reelmatch/internal/models"
	"github.com/kdimtricp/reelmatch/internal/recommend"
)

func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// HomeHandler renders the language selector and the titles fetched for the
// selected language.
func (app *App) HomeHandler(w http.ResponseWriter, r *http.Request) {
	lang, err := languageParam(r)
	if err != nil {
		app.renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	page := newPageData(lang, app.TopN)
	movies, err := app.Catalog.Discover(r.Context(), lang)
	switch {
	case err != nil:
		app.logFetchFailure(r, err)
		page.Warning = msgCatalogUnavailable
	case len(movies) == 0:
		page.Notice = msgNoMovies
	default:
		page.Titles = movieTitles(movies)
	}

	app.render(w, r, http.StatusOK, "index.html", page)
}

// RecommendHandler fetches the catalog again, ranks it against the chosen
// title and renders the cards. HTMX requests get only the results partial.
func (app *App) RecommendHandler(w http.ResponseWriter, r *http.Request) {
	lang, q, err := app.parseRecommendQuery(r)
	if err != nil {
		app.renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	page := newPageData(lang, q.N)
	page.Searched = true
	page.SelectedTitle = q.Title

	movies, err := app.Catalog.Discover(r.Context(), lang)
	if err != nil {
		app.logFetchFailure(r, err)
		page.Warning = msgCatalogUnavailable
	} else {
		page.Titles = movieTitles(movies)
		recs := recommend.Recommend(movies, q.Title, q.N)
		page.Recommendations = newMovieCards(recs, app.cardOptions())
		if len(recs) == 0 {
			page.Notice = msgNoRecommendations
		}
	}

	if isHTMX(r) {
		app.render(w, r, http.StatusOK, "recommendations", page)
		return
	}
	app.render(w, r, http.StatusOK, "index.html", page)
}

func (app *App) logFetchFailure(r *http.Request, err error) {
	event := logging.Ctx(r.Context()).Warn().Err(err)
	if !errors.Is(err, catalog.ErrCatalogUnavailable) {
		event = logging.Ctx(r.Context()).Error().Err(err)
	}
	event.Msg("Catalog fetch failed")
}

func (app *App) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := app.templates.ExecuteTemplate(w, name, data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("template", name).Msg("Error rendering template")
	}
}

// renderError shows a bad-input message. HTMX only swaps 2xx responses, so
// partial requests get the alert with 200; full pages keep the status and
// the layout.
func (app *App) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if isHTMX(r) {
		app.render(w, r, http.StatusOK, "alert", alertData{Kind: "error", Message: message})
		return
	}

	lang, err := languageParam(r)
	if err != nil {
		lang = models.Languages()[0]
	}
	page := newPageData(lang, app.TopN)
	page.Error = message
	app.render(w, r, status, "index.html", page)
}
