package dashboard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pivolan/survey_dashboard/config"
	"github.com/pivolan/survey_dashboard/domain/models"
	"github.com/pivolan/survey_dashboard/plot"
)

func response(group, valoracion, aprendizajes string) models.ResponseRecord {
	r := models.ResponseRecord{Group: group, Answers: map[string]string{}}
	if valoracion != "" {
		r.Answers["valoracion_curso"] = valoracion
	}
	if aprendizajes != "" {
		r.Answers["aprendizajes_adquiridos"] = aprendizajes
	}
	return r
}

func testSet() models.ResponseSet {
	return models.ResponseSet{
		response("A", "Sí", "Muy bueno, aprendí mucho"),
		response("B", "No", "Python y SQL"),
		response("A", "Sí", ""),
		response("", "No", "python"),
	}
}

func testDashboard() config.Dashboard {
	d := config.DefaultDashboard()
	d.Charts = []config.ChartSpec{
		{Column: "Valoración Curso", Title: "VALORACIÓN GENERAL DEL CURSO", Style: "donut"},
		{Column: "valoracion_curso", Title: "Barras", Style: "bar", Order: "descending"},
	}
	return d
}

func newTestPipeline(t *testing.T, d config.Dashboard) *Pipeline {
	t.Helper()
	p, err := NewPipeline(d, zap.NewNop())
	require.NoError(t, err)
	return p
}

func TestRenderSelection(t *testing.T) {
	p := newTestPipeline(t, testDashboard())

	pass, err := p.Render(testSet(), []string{"A", " "})
	require.NoError(t, err)

	assert.NotEmpty(t, pass.ID)
	assert.Equal(t, []string{"A"}, pass.Selection)
	assert.Equal(t, 4, pass.TotalRecords)
	assert.Equal(t, 2, pass.SelectedRecords)
	require.Len(t, pass.Charts, 2)

	donut := pass.Charts[0]
	assert.Equal(t, "valoracion_curso", donut.Column)
	assert.Equal(t, plot.StyleDonut, donut.Style)
	assert.Equal(t, []models.ValueCount{{Value: "Sí", Count: 2}}, donut.Distribution.Entries)
	require.Len(t, donut.Geometry.Wedges, 1)
	assert.InDelta(t, 360, donut.Geometry.Wedges[0].Span(), 1e-9)
	assert.Equal(t, "VALORACIÓN GENERAL DEL CURSO", donut.Geometry.Title)

	assert.Equal(t, "muy bueno  aprendi mucho", pass.Text.String())
	words := make([]string, len(pass.Keywords))
	for i, k := range pass.Keywords {
		words[i] = k.Word
	}
	assert.Contains(t, words, "bueno")
	assert.Contains(t, words, "aprendi")
}

func TestRenderAllGroups(t *testing.T) {
	p := newTestPipeline(t, testDashboard())

	pass, err := p.Render(testSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, 4, pass.SelectedRecords)

	bar := pass.Charts[1]
	assert.Equal(t, plot.StyleBar, bar.Style)
	// Bars ignore the configured order.
	assert.Equal(t, []models.ValueCount{{Value: "Sí", Count: 2}, {Value: "No", Count: 2}}, bar.Distribution.Entries)
	assert.Equal(t, 2, bar.Geometry.MaxCount)

	assert.Equal(t, 2, pass.Keywords[0].Count)
	assert.Equal(t, "python", pass.Keywords[0].Word)
}

func TestRenderUnlabeledGroup(t *testing.T) {
	p := newTestPipeline(t, testDashboard())
	pass, err := p.Render(testSet(), []string{"unlabeled"})
	require.NoError(t, err)
	assert.Equal(t, 1, pass.SelectedRecords)
}

func TestRenderEmptySelectionResult(t *testing.T) {
	p := newTestPipeline(t, testDashboard())
	pass, err := p.Render(testSet(), []string{"Z"})
	require.NoError(t, err)

	assert.Equal(t, 0, pass.SelectedRecords)
	for _, c := range pass.Charts {
		assert.True(t, c.Geometry.Empty)
	}
	assert.Empty(t, pass.Text.String())
	assert.Empty(t, pass.Keywords)
}

func TestRenderPassesAreIndependent(t *testing.T) {
	p := newTestPipeline(t, testDashboard())
	first, err := p.Render(testSet(), []string{"A"})
	require.NoError(t, err)
	second, err := p.Render(testSet(), []string{"B"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, first.Charts[0].Distribution.Total())
	assert.Equal(t, 1, second.Charts[0].Distribution.Total())
}

func TestNewPipelineErrors(t *testing.T) {
	d := testDashboard()
	d.Charts[0].Style = "radar"
	_, err := NewPipeline(d, nil)
	assert.ErrorIs(t, err, plot.ErrUnknownStyle)

	d = testDashboard()
	d.Charts[0].Order = "random"
	_, err = NewPipeline(d, nil)
	assert.Error(t, err)

	d = testDashboard()
	d.GroupColumn = ""
	_, err = NewPipeline(d, nil)
	assert.Error(t, err)
}

func TestNewPipelineStopwords(t *testing.T) {
	d := testDashboard()
	d.Stopwords = []string{"python"}
	p := newTestPipeline(t, d)

	pass, err := p.Render(testSet(), nil)
	require.NoError(t, err)
	for _, k := range pass.Keywords {
		assert.NotEqual(t, "python", k.Word)
	}
}

func TestPageShowsTextQuestion(t *testing.T) {
	p := newTestPipeline(t, testDashboard())
	pass, err := p.Render(testSet(), nil)
	require.NoError(t, err)

	page := p.Page(pass)
	assert.Equal(t, "CONOCIMIENTOS ADQUIRIDOS EN EL CURSO", page.WordCloudTitle)
	assert.Equal(t, "¿Qué aprendizajes adquiriste en este curso?", page.WordCloudText)
	assert.Equal(t, "CONOCIMIENTOS ADQUIRIDOS EN EL CURSO\n¿Qué aprendizajes adquiriste en este curso?", p.KeywordsHeading())

	d := testDashboard()
	d.TextQuestion = ""
	assert.Equal(t, "CONOCIMIENTOS ADQUIRIDOS EN EL CURSO", newTestPipeline(t, d).KeywordsHeading())
}

func TestWriteOutputs(t *testing.T) {
	p := newTestPipeline(t, testDashboard())
	pass, err := p.Render(testSet(), nil)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	paths, err := p.WriteOutputs(pass, dir, plot.DefaultRenderOptions())
	require.NoError(t, err)
	require.Len(t, paths, 3)

	assert.Equal(t, filepath.Join(dir, "01_valoracion_general_del_curso.png"), paths[0])
	assert.Equal(t, filepath.Join(dir, "02_barras.png"), paths[1])

	png, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(png), "\x89PNG"))

	html, err := os.ReadFile(paths[2])
	require.NoError(t, err)
	assert.Contains(t, string(html), "Total de respuestas seleccionadas: 4")
}
