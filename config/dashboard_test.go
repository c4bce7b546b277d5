package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDashboard(t *testing.T) {
	d, err := ParseDashboard([]byte(`
title: Encuesta docentes
group_column: comision
charts:
  - column: valoracion_curso
    title: Valoración
    style: donut
  - column: conocimientos_aplicables
    style: bar
stopwords: [curso, clase]
max_words: 25
`))
	require.NoError(t, err)
	assert.Equal(t, "Encuesta docentes", d.Title)
	assert.Equal(t, "comision", d.GroupColumn)
	require.Len(t, d.Charts, 2)
	assert.Equal(t, "donut", d.Charts[0].Style)
	assert.Equal(t, []string{"curso", "clase"}, d.Stopwords)
	assert.Equal(t, 25, d.MaxWords)
	// untouched keys keep their defaults
	assert.Equal(t, "aprendizajes_adquiridos", d.TextColumn)
	assert.Equal(t, 0.55, d.Donut.HoleRadius)
	assert.Equal(t, []string{"valoracion_curso", "conocimientos_aplicables", "aprendizajes_adquiridos"}, d.Columns())
}

func TestParseDashboardInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"Broken yaml", "charts: [\n"},
		{"Chart without column", "charts:\n  - title: x\n"},
		{"Separator", "separator: ';;'\n"},
		{"Hole radius", "donut:\n  hole_radius: 1.5\n"},
		{"No group", "group_column: ''\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDashboard([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadDashboardMissingFile(t *testing.T) {
	d, err := LoadDashboard(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDashboard(), d)
}

func TestLoadDashboardFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_words: 10\n"), 0o644))
	d, err := LoadDashboard(path)
	require.NoError(t, err)
	assert.Equal(t, 10, d.MaxWords)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DB_TABLE", "")
	t.Setenv("TG_TOKEN", "token")
	t.Setenv("LOG_LEVEL", "debug")
	cfg := FromEnv()
	assert.Equal(t, "respuestas_informe", cfg.DbTable)
	assert.Equal(t, "token", cfg.TgToken)
	assert.Equal(t, "debug", cfg.LogLevel)
}
