package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pivolan/survey_dashboard/config"
	"github.com/pivolan/survey_dashboard/dashboard"
	"github.com/pivolan/survey_dashboard/domain/models"
	"github.com/pivolan/survey_dashboard/source"
)

const surveyCSV = `Comisión,Conocimientos previos,Valoración curso,Conocimientos aplicables,Valoración docente,Aprendizajes adquiridos
A,Sí,Muy buena,Sí,Excelente,"Aprendí Excel, tablas dinámicas"
A,No,Buena,Sí,Muy buena,Excel avanzado
B,Sí,Muy buena,No,Excelente,
,No,Regular,No,Buena,redes
`

func writeSurvey(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "respuestas.csv")
	require.NoError(t, os.WriteFile(path, []byte(surveyCSV), 0o644))
	return path, filepath.Join(dir, "missing.yaml")
}

func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute(), out.String())
	return out.String()
}

func testResponses(t *testing.T) models.ResponseSet {
	t.Helper()
	path, _ := writeSurvey(t)
	set, err := source.LoadFile(path, source.SchemaFromDashboard(config.DefaultDashboard()))
	require.NoError(t, err)
	return set
}

func testPipeline(t *testing.T) *dashboard.Pipeline {
	t.Helper()
	p, err := dashboard.NewPipeline(config.DefaultDashboard(), zap.NewNop())
	require.NoError(t, err)
	return p
}

func TestGroupsCommand(t *testing.T) {
	data, cfg := writeSurvey(t)
	out := runCmd(t, "groups", "--data", data, "--config", cfg)
	assert.Contains(t, out, "GRUPO")
	assert.Contains(t, out, "unlabeled")
	assert.Contains(t, out, "| A ")
}

func TestSummaryCommand(t *testing.T) {
	data, cfg := writeSurvey(t)
	out := runCmd(t, "summary", "--data", data, "--config", cfg, "--group", "A")
	assert.Contains(t, out, "Total de respuestas seleccionadas: 2 de 4 (grupos: A)")
	assert.Contains(t, out, "VALORACIÓN GENERAL DEL CURSO")
	assert.Contains(t, out, "excel")
	assert.NotContains(t, out, "Regular")
}

func TestRenderCommand(t *testing.T) {
	data, cfg := writeSurvey(t)
	dir := filepath.Join(t.TempDir(), "out")
	out := runCmd(t, "render", "--data", data, "--config", cfg, "-g", "A", "-g", "B", "--out", dir)
	assert.Contains(t, out, "Total de respuestas seleccionadas: 3 de 4 (grupos: A, B)")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
	assert.FileExists(t, filepath.Join(dir, "dashboard.html"))
	assert.FileExists(t, filepath.Join(dir, "02_valoracion_general_del_curso.png"))
}

func TestSummaryCommandGroupWithComma(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "respuestas.csv")
	require.NoError(t, os.WriteFile(data, []byte(`Comisión,Conocimientos previos,Valoración curso,Conocimientos aplicables,Valoración docente,Aprendizajes adquiridos
"Excel, nivel 1",Sí,Muy buena,Sí,Excelente,tablas
Excel,No,Buena,No,Buena,formulas
`), 0o644))

	out := runCmd(t, "summary", "--data", data, "--config", filepath.Join(dir, "missing.yaml"), "--group", "Excel, nivel 1")
	assert.Contains(t, out, "Total de respuestas seleccionadas: 1 de 2 (grupos: Excel, nivel 1)")
	assert.Contains(t, out, "tablas")
	assert.NotContains(t, out, "formulas")
	assert.Contains(t, out, "¿Qué aprendizajes adquiriste en este curso?")
}

func TestLoadResponsesWithoutSource(t *testing.T) {
	_, cfg := writeSurvey(t)
	a, err := newApp(&config.Config{DashboardPath: cfg, LogLevel: "error"})
	require.NoError(t, err)
	_, err = a.loadResponses()
	assert.ErrorIs(t, err, errNoDataSource)
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		args string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"A", []string{"A"}},
		{"A, B ,,C", []string{"A", "B", "C"}},
		{`"Excel, nivel 1", B`, []string{"Excel, nivel 1", "B"}},
		{`"Excel, nivel 1"`, []string{"Excel, nivel 1"}},
	}
	for _, tt := range tests {
		t.Run(tt.args, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSelection(tt.args))
		})
	}
}
