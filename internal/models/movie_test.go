package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestMovie_FeatureText(t *testing.T) {
	tests := []struct {
		name     string
		movie    Movie
		expected string
	}{
		{
			name:     "overview and genres",
			movie:    Movie{Overview: "space adventure", GenreIDs: []int{28, 12}},
			expected: "space adventure 28 12",
		},
		{
			name:     "genre order kept",
			movie:    Movie{Overview: "x", GenreIDs: []int{12, 28}},
			expected: "x 12 28",
		},
		{
			name:     "no genres",
			movie:    Movie{Overview: "romance drama"},
			expected: "romance drama",
		},
		{
			name:     "empty overview",
			movie:    Movie{GenreIDs: []int{18}},
			expected: " 18",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.movie.FeatureText(); got != tt.expected {
				t.Errorf("FeatureText() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestMovie_NullOverviewDecodesAsEmpty(t *testing.T) {
	var m Movie
	if err := json.Unmarshal([]byte(`{"id":7,"title":"T","overview":null,"genre_ids":[18]}`), &m); err != nil {
		t.Fatalf("Failed to decode movie: %v", err)
	}
	if m.Overview != "" {
		t.Errorf("Expected empty overview, got %q", m.Overview)
	}
	if m.FeatureText() != (Movie{GenreIDs: []int{18}}).FeatureText() {
		t.Errorf("null overview should produce the same feature text as an empty one")
	}
}

func TestMovie_ReleaseYear(t *testing.T) {
	if got := (Movie{ReleaseDate: "2023-10-19"}).ReleaseYear(); got != "2023" {
		t.Errorf("Expected 2023, got %q", got)
	}
	if got := (Movie{}).ReleaseYear(); got != "" {
		t.Errorf("Expected empty year, got %q", got)
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected Language
		wantErr  bool
	}{
		{"te", Telugu, false},
		{"Hindi", Hindi, false},
		{" EN ", English, false},
		{"telugu", Telugu, false},
		{"fr", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLanguage(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedLanguage) {
					t.Errorf("Expected ErrUnsupportedLanguage, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ParseLanguage(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLanguage_Name(t *testing.T) {
	expected := map[Language]string{Telugu: "Telugu", Hindi: "Hindi", English: "English"}
	for l, name := range expected {
		if got := l.Name(); got != name {
			t.Errorf("%s.Name() = %q, expected %q", l, got, name)
		}
	}
	if !Telugu.Valid() || Language("fr").Valid() {
		t.Error("Valid() mismatch")
	}
}
