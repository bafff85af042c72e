package models

import (
	"strconv"
	"strings"
)

// Movie is a single catalog record as returned by the discover endpoint.
type Movie struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	GenreIDs         []int   `json:"genre_ids"`
	PosterPath       string  `json:"poster_path"`
	ReleaseDate      string  `json:"release_date"`
	Popularity       float64 `json:"popularity"`
	OriginalLanguage string  `json:"original_language"`
}

// FeatureText joins the overview and the genre identifiers, in their
// original order, into the text used for similarity.
func (m Movie) FeatureText() string {
	var b strings.Builder
	b.WriteString(m.Overview)
	for _, id := range m.GenreIDs {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}

func (m Movie) ReleaseYear() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}
