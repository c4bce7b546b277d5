// Package textnorm cleans free-text answers into a token stream for keyword surfacing.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/pivolan/survey_dashboard/domain/models"
)

// TokenStream is the cleaned, space-joined text of a whole column.
// Stopwords are not removed from it; consumers apply them when counting.
type TokenStream string

// Tokens splits the stream on whitespace.
func (s TokenStream) Tokens() []string {
	return strings.Fields(string(s))
}

func (s TokenStream) String() string {
	return string(s)
}

// Normalize cleans every present value of field and joins them with single spaces.
// Records with no value for field are skipped; a value that fails to normalize
// contributes an empty string.
func Normalize(set models.ResponseSet, field string) TokenStream {
	parts := make([]string, 0, len(set))
	for _, r := range set {
		v, ok := r.Answers[field]
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		parts = append(parts, NormalizeText(v))
	}
	return TokenStream(strings.Join(parts, " "))
}

// NormalizeText lower-cases s, strips accents and anything outside ASCII, and
// turns every character that is not a word character or whitespace into a space.
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s, err := stripAccents(s)
	if err != nil {
		return ""
	}
	return replaceSymbols(s)
}

// stripAccents decomposes with NFKD and drops what cannot be encoded as ASCII.
func stripAccents(s string) (string, error) {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	out, _, err := transform.String(t, s)
	return out, err
}

func replaceSymbols(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isWordRune(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(' ')
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
