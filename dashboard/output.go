package dashboard

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pivolan/survey_dashboard/plot"
	"github.com/pivolan/survey_dashboard/source"
)

const pageFile = "dashboard.html"

// Page assembles the interactive dashboard of a pass.
func (p *Pipeline) Page(pass Pass) plot.Page {
	page := plot.Page{
		Title:          p.title,
		Subtitle:       fmt.Sprintf("Total de respuestas seleccionadas: %d", pass.SelectedRecords),
		WordCloudTitle: p.textTitle,
		WordCloudText:  p.question,
		Words:          pass.Keywords,
	}
	for _, c := range pass.Charts {
		page.Charts = append(page.Charts, c.Geometry)
	}
	return page
}

// ChartFileName is the PNG name of the i-th chart.
func ChartFileName(i int, c Chart) string {
	name := source.Slugify(c.Title)
	if name == "" {
		name = c.Column
	}
	return fmt.Sprintf("%02d_%s.png", i+1, name)
}

// WriteOutputs renders every chart as PNG plus the HTML page into dir and
// returns the written paths.
func (p *Pipeline) WriteOutputs(pass Pass, dir string, opts plot.RenderOptions) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var paths []string
	for i, c := range pass.Charts {
		img, err := plot.RenderPNG(c.Geometry, opts)
		if err != nil {
			return paths, fmt.Errorf("render %s: %w", c.Column, err)
		}
		path := filepath.Join(dir, ChartFileName(i, c))
		if err := os.WriteFile(path, img, 0o644); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	var buf bytes.Buffer
	if err := plot.RenderDashboardHTML(&buf, p.Page(pass)); err != nil {
		return paths, err
	}
	path := filepath.Join(dir, pageFile)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return paths, err
	}
	paths = append(paths, path)

	p.log.Debug("outputs written", zap.String("pass_id", pass.ID), zap.Int("files", len(paths)))
	return paths, nil
}
