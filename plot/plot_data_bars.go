package plot

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	barThickness   = 0.6 // share of a row taken by the bar
	barLabelGap    = 10
	barValueMargin = 60
	barAxisHeight  = 24
)

type barsForGraph struct {
	bars     []Bar
	maxCount int
}

func (d barsForGraph) labelWidth(r chart.Renderer) int {
	width := 0
	for _, b := range d.bars {
		if w := r.MeasureText(b.Label).Width(); w > width {
			width = w
		}
	}
	return width + barLabelGap
}

func (d barsForGraph) draw(r chart.Renderer, box chart.Box) {
	if len(d.bars) == 0 || d.maxCount <= 0 {
		return
	}
	left := box.Left + d.labelWidth(r)
	right := box.Right - barValueMargin
	bottom := box.Bottom - barAxisHeight
	if right <= left || bottom <= box.Top {
		return
	}

	maxX := float64(d.maxCount)
	step := calculateGridStep(maxX)
	if step > 0 {
		maxX = math.Ceil(maxX/step) * step
	}
	xs := float64(right-left) / maxX
	row := float64(bottom-box.Top) / float64(len(d.bars))

	d.drawGrid(r, left, bottom, box.Top, xs, step, maxX)

	for _, b := range d.bars {
		// Position 0 sits on the axis.
		rowTop := float64(bottom) - float64(b.Position+1)*row
		y0 := int(rowTop + row*(1-barThickness)/2)
		y1 := int(rowTop + row*(1+barThickness)/2)
		x1 := left + int(math.Round(b.Length*xs))

		r.SetFillColor(hexColor(b.Color))
		r.SetStrokeColor(hexColor(b.Color))
		r.MoveTo(left, y0)
		r.LineTo(x1, y0)
		r.LineTo(x1, y1)
		r.LineTo(left, y1)
		r.Close()
		r.FillStroke()

		mid := (y0 + y1) / 2
		drawAligned(r, b.Label, left, mid, AlignRight)
		drawAligned(r, b.ValueLabel, left+int(math.Round(b.ValueAt.X*xs)), mid, AlignLeft)
	}

	r.SetStrokeColor(drawing.ColorBlack)
	r.SetStrokeWidth(1)
	r.MoveTo(left, box.Top)
	r.LineTo(left, bottom)
	r.LineTo(right, bottom)
	r.Stroke()
}

func (d barsForGraph) drawGrid(r chart.Renderer, left, bottom, top int, xs, step, maxX float64) {
	if step <= 0 {
		return
	}
	for v := 0.0; v <= maxX+step/2; v += step {
		x := left + int(math.Round(v*xs))
		r.SetStrokeColor(drawing.ColorFromHex("cccccc"))
		r.SetStrokeWidth(1)
		r.SetStrokeDashArray([]float64{5.0, 5.0})
		r.MoveTo(x, top)
		r.LineTo(x, bottom)
		r.Stroke()
		r.SetStrokeDashArray(nil)
		drawCentered(r, fmt.Sprintf("%.f", v), x, bottom+barAxisHeight/2)
	}
}
