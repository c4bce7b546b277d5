// Package plot turns frequency distributions into chart geometry and renders it.
package plot

import (
	"bytes"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type RenderOptions struct {
	Width    int
	Height   int
	FontSize float64
	// EmptyText is shown when the geometry has no data.
	EmptyText string
}

func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Width:     900,
		Height:    640,
		FontSize:  11,
		EmptyText: "Sin datos",
	}
}

const titleHeight = 40

// RenderPNG paints the geometry with the go-chart raster renderer.
func RenderPNG(g ChartGeometry, opts RenderOptions) ([]byte, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}
	r, err := chart.PNG(opts.Width, opts.Height)
	if err != nil {
		return nil, fmt.Errorf("error creating renderer: %v", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("error loading font: %v", err)
	}
	r.SetFont(font)
	r.SetFontSize(opts.FontSize)

	r.SetFillColor(drawing.ColorWhite)
	r.SetStrokeColor(drawing.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(opts.Width, 0)
	r.LineTo(opts.Width, opts.Height)
	r.LineTo(0, opts.Height)
	r.Close()
	r.FillStroke()

	box := chart.Box{Top: 10, Left: 20, Right: opts.Width - 20, Bottom: opts.Height - 10}
	if g.Title != "" {
		r.SetFontSize(opts.FontSize + 3)
		drawCentered(r, g.Title, opts.Width/2, titleHeight/2)
		r.SetFontSize(opts.FontSize)
		box.Top = titleHeight
	}

	if g.Empty {
		drawCentered(r, opts.EmptyText, opts.Width/2, (box.Top+box.Bottom)/2)
	} else {
		drawerFor(g).draw(r, box)
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}
	return buffer.Bytes(), nil
}

// calculateGridStep picks a 1/2/5-style tick step for an axis ending at maxValue.
func calculateGridStep(maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}

	if maxValue < 1e-10 {
		return 1e-10
	}

	magnitude := math.Pow(10, math.Floor(math.Log10(maxValue)))
	normalized := maxValue / magnitude

	var step float64
	switch {
	case normalized <= 1:
		step = 0.2
	case normalized <= 2:
		step = 0.5
	case normalized <= 5:
		step = 1.0
	default:
		step = 2.0
	}

	finalStep := step * magnitude

	// Large steps are rounded to round numbers.
	if finalStep >= 1000 {
		return math.Round(finalStep/100) * 100
	}
	if finalStep >= 100 {
		return math.Round(finalStep/10) * 10
	}
	// Counts are whole numbers.
	if finalStep < 1 && maxValue >= 1 {
		return 1
	}

	return finalStep
}
