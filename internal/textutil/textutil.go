package textutil

import (
	"regexp"
	"strings"
)

var (
	urls        = regexp.MustCompile(`(?:https?://|www\.)\S+`)
	nonWord     = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	whitespace  = regexp.MustCompile(`\s+`)
	sentenceEnd = regexp.MustCompile(`[.!?]+`)
)

// Clean lowercases text, strips URLs, replaces non-word characters with
// spaces, collapses whitespace runs, and trims. Empty input stays empty.
// Clean is idempotent.
func Clean(s string) string {
	s = strings.ToLower(s)
	s = urls.ReplaceAllString(s, "")
	s = nonWord.ReplaceAllString(s, " ")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Words splits on whitespace.
func Words(s string) []string { return strings.Fields(s) }

// WordCount counts whitespace-separated words.
func WordCount(s string) int { return len(strings.Fields(s)) }

// SentenceCount counts non-empty segments between sentence terminators.
// Counted on raw text; cleaned text has no punctuation left to split on.
func SentenceCount(s string) int {
	n := 0
	for _, seg := range sentenceEnd.Split(s, -1) {
		if strings.TrimSpace(seg) != "" {
			n++
		}
	}
	return n
}

// AverageWordLength is the mean rune length of the words in s, 0 if none.
func AverageWordLength(s string) float64 {
	words := strings.Fields(s)
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += len([]rune(w))
	}
	return float64(total) / float64(len(words))
}
