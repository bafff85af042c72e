package catalog

import "testing"

func TestImageURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		size     string
		path     string
		expected string
	}{
		{
			name:     "default base",
			size:     "w200",
			path:     "/8Vt6mWEReuy4Of61Lnj5Xj704m8.jpg",
			expected: "https://image.tmdb.org/t/p/w200/8Vt6mWEReuy4Of61Lnj5Xj704m8.jpg",
		},
		{
			name:     "configured base with trailing slash",
			base:     "https://img.example.com/t/p/",
			size:     "w300",
			path:     "/poster.jpg",
			expected: "https://img.example.com/t/p/w300/poster.jpg",
		},
		{
			name:     "no poster",
			size:     "w200",
			path:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ImageURL(tt.base, tt.size, tt.path)
			if result != tt.expected {
				t.Errorf("ImageURL(%q, %q, %q) = %q, expected %q",
					tt.base, tt.size, tt.path, result, tt.expected)
			}
		})
	}
}

func TestMovieURL(t *testing.T) {
	if got := MovieURL(603); got != "https://www.themoviedb.org/movie/603" {
		t.Errorf("MovieURL(603) = %q", got)
	}
}
