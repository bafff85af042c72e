// Package recommend ranks movies by TF-IDF cosine similarity of their
// synopsis and genre identifiers.
package recommend

import (
	"time"

	"github.com/kdimtricp/reelmatch/internal/metrics"
	"github.com/kdimtricp/reelmatch/internal/models"
)

const DefaultTopN = 5

// Recommend returns up to topN records most similar to chosenTitle, best
// first. It returns nil for fewer than two records, an empty vocabulary or
// an unknown title.
func Recommend(records []models.Movie, chosenTitle string, topN int) []models.Movie {
	start := time.Now()
	defer func() {
		metrics.RankDuration.Observe(time.Since(start).Seconds())
	}()

	out := recommend(records, chosenTitle, topN)
	if len(out) == 0 {
		metrics.Recommendations.WithLabelValues("none").Inc()
		return nil
	}
	metrics.Recommendations.WithLabelValues("found").Inc()
	return out
}

func recommend(records []models.Movie, chosenTitle string, topN int) []models.Movie {
	idx := BuildIndex(records)
	row, ok := idx.Lookup(chosenTitle)
	if !ok {
		return nil
	}

	rows := idx.Rank(row, topN)
	if len(rows) == 0 {
		return nil
	}
	out := make([]models.Movie, len(rows))
	for i, r := range rows {
		out[i] = idx.record(r)
	}
	return out
}
