package catalog

import (
	"fmt"
	"strings"
)

// ImageURL builds {base}/{size}{path}, e.g. https://image.tmdb.org/t/p/w200/abc.jpg.
// It returns "" when the record has no poster.
func ImageURL(base, size, path string) string {
	if path == "" {
		return ""
	}
	if base == "" {
		base = DefaultImageBaseURL
	}
	return fmt.Sprintf("%s/%s%s", strings.TrimRight(base, "/"), size, path)
}

func MovieURL(id int) string {
	return fmt.Sprintf("https://www.themoviedb.org/movie/%d", id)
}
