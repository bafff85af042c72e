package models

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language is an ISO 639-1 code accepted by the catalog's
// with_original_language filter.
type Language string

const (
	Telugu  Language = "te"
	Hindi   Language = "hi"
	English Language = "en"
)

// Languages returns the selectable languages in display order.
func Languages() []Language {
	return []Language{Telugu, Hindi, English}
}

func (l Language) Code() string {
	return string(l)
}

func (l Language) Valid() bool {
	switch l {
	case Telugu, Hindi, English:
		return true
	}
	return false
}

// Name returns the English display name, e.g. "Telugu".
func (l Language) Name() string {
	tag, err := language.Parse(string(l))
	if err != nil {
		return string(l)
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return string(l)
}

// ParseLanguage accepts either a code ("te") or an English name ("Telugu"),
// case-insensitively.
func ParseLanguage(s string) (Language, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, l := range Languages() {
		if s == l.Code() || s == strings.ToLower(l.Name()) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}
