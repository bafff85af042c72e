package recommend

import (
	"sort"
	"strings"

	"github.com/kdimtricp/reelmatch/internal/models"
)

// Index holds the pairwise similarity of one fetched record set. It is
// built per request and discarded with the records.
type Index struct {
	records []models.Movie
	scores  [][]float64
	byTitle map[string]int
}

// BuildIndex vectorises FeatureText for every record and computes the full
// cosine similarity matrix. It returns nil when there are fewer than two
// records or the records share no usable terms at all.
func BuildIndex(records []models.Movie) *Index {
	if len(records) < 2 {
		return nil
	}

	docs := make([]string, len(records))
	for i, m := range records {
		docs[i] = m.FeatureText()
	}
	vectors, vocab := vectorize(docs)
	if vocab == 0 {
		return nil
	}

	n := len(records)
	scores := make([][]float64, n)
	for i := range scores {
		scores[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		if vectors[i] != nil {
			scores[i][i] = dot(vectors[i], vectors[i])
		}
		for j := i + 1; j < n; j++ {
			s := dot(vectors[i], vectors[j])
			scores[i][j] = s
			scores[j][i] = s
		}
	}

	byTitle := make(map[string]int, n)
	for i, m := range records {
		key := foldTitle(m.Title)
		if _, seen := byTitle[key]; !seen {
			byTitle[key] = i
		}
	}

	return &Index{records: records, scores: scores, byTitle: byTitle}
}

func foldTitle(title string) string {
	return strings.ToLower(title)
}

// Len is the number of records, and the matrix dimension.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.records)
}

// Similarity returns the cosine similarity of rows i and j, or 0 when
// either is out of range.
func (idx *Index) Similarity(i, j int) float64 {
	if idx == nil || i < 0 || j < 0 || i >= len(idx.records) || j >= len(idx.records) {
		return 0
	}
	return idx.scores[i][j]
}

// Lookup finds the first row whose title matches case-insensitively.
func (idx *Index) Lookup(title string) (int, bool) {
	if idx == nil {
		return 0, false
	}
	row, ok := idx.byTitle[foldTitle(title)]
	return row, ok
}

// Rank returns up to topN row indexes ordered by descending similarity to
// row. Ties keep fetch order. Rows sharing the chosen title are excluded
// and each non-zero record ID appears at most once.
func (idx *Index) Rank(row, topN int) []int {
	if idx == nil || topN <= 0 || row < 0 || row >= len(idx.records) {
		return nil
	}

	chosen := idx.records[row]
	chosenTitle := foldTitle(chosen.Title)

	candidates := make([]int, 0, len(idx.records)-1)
	for j, m := range idx.records {
		if j == row || foldTitle(m.Title) == chosenTitle {
			continue
		}
		candidates = append(candidates, j)
	}

	scores := idx.scores[row]
	sort.SliceStable(candidates, func(a, b int) bool {
		return scores[candidates[a]] > scores[candidates[b]]
	})

	// Records without an ID are told apart by row only.
	seen := make(map[int]struct{}, len(candidates)+1)
	if chosen.ID != 0 {
		seen[chosen.ID] = struct{}{}
	}
	ranked := make([]int, 0, topN)
	for _, j := range candidates {
		if id := idx.records[j].ID; id != 0 {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
		}
		ranked = append(ranked, j)
		if len(ranked) == topN {
			break
		}
	}
	if len(ranked) == 0 {
		return nil
	}
	return ranked
}

func (idx *Index) record(row int) models.Movie {
	return idx.records[row]
}
