package textnorm

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pivolan/survey_dashboard/domain/models"
)

func TestFrequencies(t *testing.T) {
	stream := TokenStream("aprendi excel y tablas  excel dinamicas de excel tablas 2024 a _x000d_ muy")
	got := Frequencies(stream, DefaultStopwords(), 0)
	assert.Equal(t, []models.WordFrequency{
		{Word: "excel", Count: 3},
		{Word: "tablas", Count: 2},
		{Word: "aprendi", Count: 1},
		{Word: "dinamicas", Count: 1},
	}, got)
}

func TestFrequenciesCap(t *testing.T) {
	words := make([]string, 0, 60)
	for i := 0; i < 60; i++ {
		words = append(words, fmt.Sprintf("palabra%c%c", 'a'+i/26, 'a'+i%26))
	}
	got := Frequencies(TokenStream(strings.Join(words, " ")), NewStopwordSet(), DefaultMaxWords)
	assert.Len(t, got, DefaultMaxWords)
	assert.Equal(t, "palabraaa", got[0].Word)
}

func TestStopwordSet(t *testing.T) {
	base := NewStopwordSet("Uno", " dos ", "")
	assert.Equal(t, 2, base.Len())
	assert.True(t, base.Contains("UNO"))

	extended := base.With("tres")
	assert.True(t, extended.Contains("tres"))
	assert.False(t, base.Contains("tres"))

	def := DefaultStopwords()
	for _, w := range []string{"the", "gracias", "_x000d_", "tambien"} {
		assert.True(t, def.Contains(w), w)
	}
	assert.False(t, def.Contains("excel"))
}
