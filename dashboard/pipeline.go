// Package dashboard wires filtering, tallying, geometry and keyword extraction
// into a single render pass.
package dashboard

import (
	"fmt"
	"strings"

	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"

	"github.com/pivolan/survey_dashboard/config"
	"github.com/pivolan/survey_dashboard/domain/models"
	"github.com/pivolan/survey_dashboard/plot"
	"github.com/pivolan/survey_dashboard/source"
	"github.com/pivolan/survey_dashboard/survey"
	"github.com/pivolan/survey_dashboard/textnorm"
)

type chartPlan struct {
	column string
	title  string
	style  plot.Style
	order  survey.Order
}

// Pipeline holds the resolved dashboard configuration. It is read-only after
// NewPipeline, so one value can serve concurrent passes.
type Pipeline struct {
	title      string
	plans      []chartPlan
	textColumn string
	textTitle  string
	question   string
	maxWords   int
	geometry   plot.GeometryConfig
	stopwords  textnorm.StopwordSet
	log        *zap.Logger
}

// Chart is one rendered question.
type Chart struct {
	Column       string
	Title        string
	Style        plot.Style
	Distribution models.FrequencyDistribution
	Geometry     plot.ChartGeometry
}

// Pass is the output of one render: nothing in it is shared with other passes.
type Pass struct {
	ID              string
	Selection       []string
	TotalRecords    int
	SelectedRecords int
	Charts          []Chart
	Text            textnorm.TokenStream
	Keywords        []models.WordFrequency
}

func NewPipeline(d config.Dashboard, log *zap.Logger) (*Pipeline, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	p := &Pipeline{
		title:      d.Title,
		textColumn: source.Slugify(d.TextColumn),
		textTitle:  d.TextTitle,
		question:   d.TextQuestion,
		maxWords:   d.MaxWords,
		geometry:   plot.DefaultGeometryConfig(),
		stopwords:  textnorm.DefaultStopwords().With(d.Stopwords...),
		log:        log,
	}
	if p.maxWords <= 0 {
		p.maxWords = textnorm.DefaultMaxWords
	}
	if len(d.Palette) > 0 {
		p.geometry.Palette = append([]string(nil), d.Palette...)
	}
	if d.Donut.HoleRadius > 0 {
		p.geometry.HoleRadius = d.Donut.HoleRadius
	}
	p.geometry.StartAngle = d.Donut.StartAngle

	for i, c := range d.Charts {
		style, err := plot.ParseStyle(c.Style)
		if err != nil {
			return nil, fmt.Errorf("charts[%d]: %w", i, err)
		}
		order, err := survey.ParseOrder(c.Order)
		if err != nil {
			return nil, fmt.Errorf("charts[%d]: %w", i, err)
		}
		// Bars always stack by count.
		if style == plot.StyleBar {
			order = survey.OrderAscending
		}
		title := c.Title
		if title == "" {
			title = c.Column
		}
		p.plans = append(p.plans, chartPlan{
			column: source.Slugify(c.Column),
			title:  title,
			style:  style,
			order:  order,
		})
	}
	return p, nil
}

// Render filters set by selection and recomputes every chart and the keyword table.
// An empty selection means all groups.
func (p *Pipeline) Render(set models.ResponseSet, selection []string) (Pass, error) {
	pass := Pass{
		ID:           uuid.NewV4().String(),
		Selection:    cleanSelection(selection),
		TotalRecords: len(set),
	}
	selected := survey.Filter(set, pass.Selection)
	pass.SelectedRecords = len(selected)

	for _, plan := range p.plans {
		dist := survey.Tally(selected, plan.column, plan.order)
		g, err := plot.Build(plan.style, dist, p.geometry)
		if err != nil {
			return pass, fmt.Errorf("chart %s: %w", plan.column, err)
		}
		g.Title = plan.title
		pass.Charts = append(pass.Charts, Chart{
			Column:       plan.column,
			Title:        plan.title,
			Style:        plan.style,
			Distribution: dist,
			Geometry:     g,
		})
	}

	if p.textColumn != "" {
		pass.Text = textnorm.Normalize(selected, p.textColumn)
		pass.Keywords = textnorm.Frequencies(pass.Text, p.stopwords, p.maxWords)
	}

	p.log.Info("render pass",
		zap.String("pass_id", pass.ID),
		zap.Strings("selection", pass.Selection),
		zap.Int("total_records", pass.TotalRecords),
		zap.Int("selected_records", pass.SelectedRecords),
		zap.Int("keywords", len(pass.Keywords)),
	)
	return pass, nil
}

// KeywordsHeading is the keyword surface title followed by the survey question behind it.
func (p *Pipeline) KeywordsHeading() string {
	return strings.TrimSpace(p.textTitle + "\n" + p.question)
}

func cleanSelection(selection []string) []string {
	out := make([]string, 0, len(selection))
	for _, s := range selection {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
