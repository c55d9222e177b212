// Package classify assigns a Kind to captured text content.
//
// Classification happens once at capture time and is never recomputed; the
// rules are deliberately cheap string checks rather than full parsing, since
// a wrong guess only affects how an entry is displayed and filtered.
package classify

import (
	"strings"
	"unicode"

	"github.com/clipvault/clipvault/internal/types"
)

// Classify maps text content to a Kind. First match wins: email, then url,
// then plain text. Every input maps to exactly one kind.
func Classify(content string) types.Kind {
	if looksLikeEmail(content) {
		return types.KindEmail
	}
	if looksLikeURL(content) {
		return types.KindURL
	}
	return types.KindText
}

func looksLikeEmail(s string) bool {
	if !strings.Contains(s, "@") || !strings.Contains(s, ".") {
		return false
	}
	return !strings.ContainsFunc(s, unicode.IsSpace)
}

func looksLikeURL(s string) bool {
	return strings.HasPrefix(s, "http") || strings.HasPrefix(s, "www.")
}
