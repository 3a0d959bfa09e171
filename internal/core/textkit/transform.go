// Package textkit provides deterministic text transforms and analysis
// used by the text service. Everything here is pure: no storage, no
// clocks, safe for concurrent use
package textkit

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upper = cases.Upper(language.Und)
	lower = cases.Lower(language.Und)
)

// Upper returns s with every cased character upper-cased.
// Non-letter characters pass through unchanged
func Upper(s string) string {
	if s == "" {
		return s
	}
	return upper.String(s)
}

// Lower returns s with every cased character lower-cased
func Lower(s string) string {
	if s == "" {
		return s
	}
	return lower.String(s)
}

// Title splits s on whitespace runs, capitalizes the first character of
// each token, lower-cases the remainder, and rejoins with single spaces.
// Original inter-word spacing is not preserved; this is lossy on purpose
func Title(s string) string {
	if s == "" {
		return ""
	}
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToTitle(r[0])
		words[i] = string(r[0]) + lower.String(string(r[1:]))
	}
	return strings.Join(words, " ")
}

// Reverse returns the exact character-sequence reversal of s.
// Runes, not grapheme clusters; combining marks will detach
func Reverse(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
