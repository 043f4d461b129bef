// Package lang resolves raw language codes fetched from video platforms
// against the fixed table of course languages.
package lang

import (
	"strings"

	"github.com/coursekit/video-api/pkg/errors"
)

// Normalize maps a raw platform language code to its canonical (code, label)
// pair from the reference table.
//
// Region subtags are dropped by truncating the code to its first two
// characters, so "en-US" resolves the same as "en". This intentionally
// collapses regional variants (zh-Hans and zh-Hant both become zh).
func Normalize(code string) (string, string, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if len(code) > 2 {
		code = code[:2]
	}
	for _, language := range AllLanguages {
		if language.Code == code {
			return language.Code, language.Label, nil
		}
	}
	return "", "", errors.UnsupportedLanguageError(code)
}

// IsSupported reports whether a code resolves against the reference table.
func IsSupported(code string) bool {
	_, _, err := Normalize(code)
	return err == nil
}
