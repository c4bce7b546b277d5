package plot

import (
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// outerExtent is how far labels reach in chart units; the radius is scaled to fit it.
const outerExtent = 1.6

type wedgesForGraph struct {
	wedges []Wedge
	hole   *Disc
	style  Style
}

type canvas struct {
	cx, cy int
	scale  float64
}

func newCanvas(box chart.Box) canvas {
	side := math.Min(float64(box.Width()), float64(box.Height()))
	return canvas{
		cx:    box.Left + box.Width()/2,
		cy:    box.Top + box.Height()/2,
		scale: side / 2 / outerExtent,
	}
}

// at maps chart units (y up) to pixels (y down).
func (c canvas) at(p Point) (int, int) {
	return c.cx + int(math.Round(p.X*c.scale)), c.cy - int(math.Round(p.Y*c.scale))
}

func (d wedgesForGraph) draw(r chart.Renderer, box chart.Box) {
	c := newCanvas(box)
	for _, w := range d.wedges {
		ex, ey := c.at(w.Center)
		r.SetFillColor(hexColor(w.Color))
		r.SetStrokeColor(drawing.ColorWhite)
		r.SetStrokeWidth(1.5)
		r.MoveTo(ex, ey)
		// Pixel angles run clockwise, so the chart span [Theta1, Theta2] starts at -Theta2.
		r.ArcTo(ex, ey, c.scale, c.scale, -w.Theta2*math.Pi/180, w.Span()*math.Pi/180)
		r.LineTo(ex, ey)
		r.Close()
		r.FillStroke()
	}

	if d.hole != nil {
		r.SetFillColor(hexColor(d.hole.Color))
		r.SetStrokeColor(hexColor(d.hole.Color))
		r.Circle(d.hole.Radius*c.scale, c.cx, c.cy)
		r.FillStroke()
	}

	for _, w := range d.wedges {
		if w.External != nil {
			drawExternalLabel(r, c, *w.External)
			continue
		}
		px, py := c.at(w.PercentAt)
		drawCentered(r, w.PercentLabel, px, py)
		lx, ly := c.at(w.LabelAt)
		align := AlignRight
		if w.LabelAt.X > 0 {
			align = AlignLeft
		}
		drawAligned(r, w.Label, lx, ly, align)
	}
}

func drawExternalLabel(r chart.Renderer, c canvas, l ExternalLabel) {
	ax, ay := c.at(l.Anchor)
	tx, ty := c.at(l.At)
	r.SetStrokeColor(drawing.ColorFromHex("555555"))
	r.SetStrokeWidth(1)
	r.MoveTo(ax, ay)
	r.LineTo(tx, ty)
	r.Stroke()
	drawAligned(r, l.Text, tx, ty, l.Align)
}

// drawAligned writes possibly multi-line text so that it starts (left) or ends
// (right) at x and is vertically centered on y.
func drawAligned(r chart.Renderer, text string, x, y int, align HAlign) {
	lines := strings.Split(text, "\n")
	lineHeight := r.MeasureText("Hg").Height() + 2
	top := y - lineHeight*len(lines)/2 + lineHeight
	for i, line := range lines {
		lx := x + 4
		if align == AlignRight {
			lx = x - 4 - r.MeasureText(line).Width()
		}
		r.SetFontColor(drawing.ColorBlack)
		r.Text(line, lx, top+i*lineHeight)
	}
}

func drawCentered(r chart.Renderer, text string, x, y int) {
	box := r.MeasureText(text)
	r.SetFontColor(drawing.ColorBlack)
	r.Text(text, x-box.Width()/2, y+box.Height()/2)
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
