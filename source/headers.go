package source

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

var specialSymbols = regexp.MustCompile("[^a-zA-Z0-9]+")

// Slugify transliterates s to ASCII and collapses everything that is not a
// letter or digit into single underscores, lower-cased.
// "VALORACIÓN GENERAL" becomes "valoracion_general".
func Slugify(s string) string {
	return strings.ToLower(replaceSpecialSymbols(unidecode.Unidecode(strings.TrimSpace(s))))
}

func replaceSpecialSymbols(input string) string {
	processedString := specialSymbols.ReplaceAllString(input, "_")
	return strings.Trim(processedString, "_")
}

// generateColumnName names an unnamed column by its 1-based position.
func generateColumnName(index int) string {
	return fmt.Sprintf("column_%d", index+1)
}

// cleanHeaderName slugs header, falling back to a positional name when nothing is left.
func cleanHeaderName(header string, index int) string {
	cleaned := Slugify(header)
	if cleaned == "" {
		return generateColumnName(index)
	}
	return cleaned
}

// CleanHeaders slugs every header and suffixes duplicates.
func CleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, h := range headers {
		cleaned[i] = cleanHeaderName(h, i)
	}
	return ValidateHeaders(cleaned)
}

// ValidateHeaders makes names unique by suffixing repeats with _1, _2, ...
// A suffixed name that is itself taken moves on to the next number.
func ValidateHeaders(headers []string) []string {
	taken := make(map[string]bool, len(headers))
	result := make([]string, len(headers))
	for i, header := range headers {
		name := header
		for n := 1; taken[name]; n++ {
			name = fmt.Sprintf("%s_%d", header, n)
		}
		taken[name] = true
		result[i] = name
	}
	return result
}
