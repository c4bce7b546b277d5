package textnorm

import (
	"sort"
	"strings"
	"unicode"

	"github.com/pivolan/survey_dashboard/domain/models"
)

// DefaultMaxWords is the word cloud size.
const DefaultMaxWords = 40

// Frequencies counts keyword candidates in stream: stopwords, single characters
// and digit-only tokens are dropped. The result is sorted by count, ties in
// order of first appearance, and capped at maxWords when maxWords > 0.
func Frequencies(stream TokenStream, stopwords StopwordSet, maxWords int) []models.WordFrequency {
	index := make(map[string]int)
	out := make([]models.WordFrequency, 0)
	for _, tok := range stream.Tokens() {
		tok = strings.ToLower(tok)
		if len([]rune(tok)) < 2 || isDigits(tok) || stopwords.Contains(tok) {
			continue
		}
		if i, ok := index[tok]; ok {
			out[i].Count++
			continue
		}
		index[tok] = len(out)
		out = append(out, models.WordFrequency{Word: tok, Count: 1})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if maxWords > 0 && len(out) > maxWords {
		out = out[:maxWords]
	}
	return out
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
