package recommend

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "stop words and punctuation", text: "The hero, and his village!", want: []string{"hero", "village"}},
		{name: "genre ids kept", text: "war 28 12 9", want: []string{"war", "28", "12", "9"}},
		{name: "single letters dropped", text: "a b c x-ray", want: []string{"ray"}},
		{name: "lowercased", text: "SPACE Space", want: []string{"space", "space"}},
		{name: "non latin", text: "ప్రేమ కథ", want: []string{"ప్రేమ", "కథ"}},
		{name: "empty", text: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestVectorize_SmoothedIDF(t *testing.T) {
	vectors, vocab := vectorize([]string{"space war", "space drama", ""})
	if vocab != 3 {
		t.Fatalf("vocab = %d, want 3", vocab)
	}
	if vectors[2] != nil {
		t.Errorf("empty document should have nil vector")
	}
	// "space" appears in 2 of 3 docs, "war" in 1, so war outweighs space.
	if vectors[0]["war"] <= vectors[0]["space"] {
		t.Errorf("expected rarer term to weigh more: %v", vectors[0])
	}
	if d := dot(vectors[0], vectors[0]); d < 0.999999 || d > 1.000001 {
		t.Errorf("vector not normalised, |v|^2 = %v", d)
	}
}
