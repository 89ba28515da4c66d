// Package nlp implements the query-understanding pipeline: text
// normalization and the client/type/month entity extractors. Everything here
// is deterministic substring and regex matching over fixed tables; there is
// no fuzzy matching.
package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes to NFD, drops combining marks, and recomposes,
// so "março" and "marco" compare equal after normalization.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes text for matching: lowercase, accents stripped,
// surrounding whitespace trimmed. Empty input yields "". Every matcher in
// this package operates on Normalize output so that accented, unaccented,
// upper and lower variants of the same token compare equal.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	out, _, err := transform.String(stripAccents, strings.ToLower(s))
	if err != nil {
		// Removal of combining marks cannot fail on valid UTF-8; fall back
		// to the lowercased input for anything else.
		out = strings.ToLower(s)
	}
	return strings.TrimSpace(out)
}
