package recommend

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tokenize lowercases NFC-normalised text and splits it into runs of
// letters, digits, combining marks and underscores. Single-rune tokens are
// dropped unless numeric, so genre identifiers like "9" survive.
// Stop words are removed.
func Tokenize(text string) []string {
	text = strings.ToLower(norm.NFC.String(text))

	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	})

	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < 2 && !isNumeric(f) {
			continue
		}
		if isStopWord(f) {
			continue
		}
		terms = append(terms, f)
	}
	return terms
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_'
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
