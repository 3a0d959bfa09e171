package textkit

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// sentenceEnd matches a sentence boundary: terminal punctuation with
// optional trailing whitespace, or a run of line breaks.
// Known quirk preserved from the original behavior: text with no terminal
// punctuation but internal line breaks counts each break as a boundary,
// while completely unterminated text is forced to a single sentence
var sentenceEnd = regexp.MustCompile(`[.!?]+\s*|[\r\n]+`)

// Analysis is the value object produced by Analyze. All fields are
// non-negative and immutable once computed
type Analysis struct {
	WordCount     int `json:"wordCount"`
	CharCount     int `json:"charCount"`
	SentenceCount int `json:"sentenceCount"`
	ReadTime      int `json:"readTime"` // minutes, assuming 200 wpm
}

// Analyze computes word, character, and sentence counts plus an estimated
// reading time for s. Empty or whitespace-only input yields the zero value
func Analyze(s string) Analysis {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Analysis{}
	}

	words := len(strings.Fields(trimmed))

	// characters excluding space characters (not all whitespace)
	chars := utf8.RuneCountInString(strings.ReplaceAll(s, " ", ""))

	sentences := len(sentenceEnd.FindAllString(trimmed, -1))
	if sentences == 0 {
		// non-empty text with no boundary is one unterminated sentence
		sentences = 1
	}

	read := (words + 199) / 200
	if read < 1 && words > 0 {
		read = 1
	}

	return Analysis{
		WordCount:     words,
		CharCount:     chars,
		SentenceCount: sentences,
		ReadTime:      read,
	}
}
