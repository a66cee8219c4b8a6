package content

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var combiningStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeID canonicalizes a route identifier: surrounding space is
// trimmed, combining marks are dropped, the result is NFC and
// lower-case. Path separators make the identifier unusable and yield "".
func NormalizeID(input string) string {
	trimmed := strings.TrimSpace(input)
	if strings.ContainsAny(trimmed, "/\\?#") || strings.Contains(trimmed, "..") {
		return ""
	}

	stripped, _, err := transform.String(combiningStripper, trimmed)
	if err != nil {
		stripped = norm.NFC.String(trimmed)
	}
	return strings.ToLower(stripped)
}
