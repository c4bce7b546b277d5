package plot

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pivolan/survey_dashboard/domain/models"
)

// Page is everything the interactive dashboard shows for one render pass.
type Page struct {
	Title          string
	Subtitle       string
	Charts         []ChartGeometry
	WordCloudTitle string
	// WordCloudText is the question the keywords answer, shown under the title.
	WordCloudText string
	Words          []models.WordFrequency
}

const (
	chartWidth  = "900px"
	chartHeight = "520px"
)

// RenderDashboardHTML writes an echarts page with one chart per geometry and the word cloud.
func RenderDashboardHTML(w io.Writer, p Page) error {
	page := components.NewPage()
	page.PageTitle = p.Title

	for _, g := range p.Charts {
		switch g.Style {
		case StyleBar:
			page.AddCharts(echartsBar(g, p.Subtitle))
		default:
			page.AddCharts(echartsPie(g, p.Subtitle))
		}
	}
	if len(p.Words) > 0 {
		page.AddCharts(echartsWordCloud(p.WordCloudTitle, p.WordCloudText, p.Words))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("error rendering dashboard page: %v", err)
	}
	return nil
}

func initOpts(title, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
	}
}

func echartsPie(g ChartGeometry, subtitle string) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(initOpts(g.Title, subtitle)...)

	data := make([]opts.PieData, 0, len(g.Wedges))
	for _, w := range g.Wedges {
		data = append(data, opts.PieData{
			Name:      w.Label,
			Value:     w.Count,
			ItemStyle: &opts.ItemStyle{Color: w.Color},
		})
	}

	radius := []string{"0%", "70%"}
	if g.Hole != nil {
		radius = []string{fmt.Sprintf("%.0f%%", g.Hole.Radius*70), "70%"}
	}
	pie.AddSeries(g.Title, data).SetSeriesOptions(
		charts.WithPieChartOpts(opts.PieChart{Radius: radius}),
		charts.WithLabelOpts(opts.Label{Formatter: "{b}: {d}%"}),
	)
	return pie
}

func echartsBar(g ChartGeometry, subtitle string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(initOpts(g.Title, subtitle)...)

	labels := make([]string, len(g.Bars))
	data := make([]opts.BarData, len(g.Bars))
	for i, b := range g.Bars {
		labels[i] = b.Label
		data[i] = opts.BarData{Value: b.Count, ItemStyle: &opts.ItemStyle{Color: b.Color}}
	}
	bar.SetXAxis(labels).AddSeries("Respuestas", data)
	// Category axis on Y: the first bar is drawn at the bottom.
	bar.XYReversal()
	return bar
}

func echartsWordCloud(title, subtitle string, words []models.WordFrequency) *charts.WordCloud {
	wc := charts.NewWordCloud()
	wc.SetGlobalOptions(initOpts(title, subtitle)...)

	data := make([]opts.WordCloudData, len(words))
	for i, w := range words {
		data[i] = opts.WordCloudData{Name: w.Word, Value: w.Count}
	}
	wc.AddSeries("palabras", data).SetSeriesOptions(
		charts.WithWorldCloudChartOpts(opts.WordCloudChart{
			Shape:     "circle",
			SizeRange: []float32{14, 80},
		}),
	)
	return wc
}
