package plot

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/pivolan/survey_dashboard/domain/models"
)

var ErrUnknownStyle = errors.New("unknown chart style")

// Style selects one of the three presentation strategies.
type Style int

const (
	StylePie Style = iota
	StyleBar
	StyleDonut
)

func (s Style) String() string {
	switch s {
	case StylePie:
		return "pie"
	case StyleBar:
		return "bar"
	case StyleDonut:
		return "donut"
	}
	return fmt.Sprintf("style(%d)", int(s))
}

func ParseStyle(s string) (Style, error) {
	switch s {
	case "pie", "":
		return StylePie, nil
	case "bar":
		return StyleBar, nil
	case "donut":
		return StyleDonut, nil
	}
	return StylePie, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// HAlign is the horizontal alignment of an external donut label.
type HAlign string

const (
	AlignLeft  HAlign = "left"
	AlignRight HAlign = "right"
)

// Point is in chart units: the pie radius is 1 and y grows upwards.
type Point struct {
	X, Y float64
}

// GeometryConfig holds every constant the engine needs. It is passed by value
// so concurrent passes never share it.
type GeometryConfig struct {
	Palette []string
	// StartAngle in degrees, counter-clockwise from the positive x axis.
	StartAngle float64

	HoleRadius          float64
	SmallShareThreshold float64
	SmallExplode        float64
	LargeExplode        float64
	// LabelAnchorRadius is below 1 (inside the ring), LabelTextRadius above 1.
	LabelAnchorRadius float64
	LabelTextRadius   float64

	PercentDistance float64
	LabelDistance   float64

	// BarLabelPad is the gap between a bar end and its value, as a fraction of the longest bar.
	BarLabelPad float64
}

var DefaultPalette = []string{"#F4A7B9", "#A9CCE3", "#ABEBC6", "#F9E79F", "#D2B4DE"}

func DefaultGeometryConfig() GeometryConfig {
	return GeometryConfig{
		Palette:             append([]string(nil), DefaultPalette...),
		StartAngle:          90,
		HoleRadius:          0.55,
		SmallShareThreshold: 0.10,
		SmallExplode:        0.06,
		LargeExplode:        0.02,
		LabelAnchorRadius:   0.8,
		LabelTextRadius:     1.25,
		PercentDistance:     0.6,
		LabelDistance:       1.1,
		BarLabelPad:         0.02,
	}
}

// Color returns the palette entry for the i-th category, cycling.
func (c GeometryConfig) Color(i int) string {
	if len(c.Palette) == 0 {
		return DefaultPalette[i%len(DefaultPalette)]
	}
	return c.Palette[i%len(c.Palette)]
}

type ExternalLabel struct {
	Text   string
	Anchor Point
	At     Point
	Align  HAlign
}

type Wedge struct {
	Label string
	Count int
	Share float64
	// Theta1 < Theta2, degrees. Wedges advance clockwise so Theta2 of a wedge
	// is Theta1 of the previous one.
	Theta1, Theta2 float64
	Bisector       float64
	Explode        float64
	// Center is the wedge apex after the explode offset.
	Center       Point
	Color        string
	PercentLabel string
	// PercentAt and LabelAt are set for inline pie labels.
	PercentAt Point
	LabelAt   Point
	External  *ExternalLabel
}

func (w Wedge) Span() float64 {
	return w.Theta2 - w.Theta1
}

type Bar struct {
	Label string
	Count int
	// Position 0 is the bottom row.
	Position   int
	Length     float64
	ValueLabel string
	ValueAt    Point
	Color      string
}

// Disc is the donut hole, centered at the origin.
type Disc struct {
	Radius float64
	Color  string
}

type ChartGeometry struct {
	Style  Style
	Title  string
	Total  int
	Empty  bool
	Wedges []Wedge
	Bars   []Bar
	Hole   *Disc
	// MaxCount is the longest bar, for axis scaling.
	MaxCount int
}

// Build converts a distribution into geometry for the requested style.
// An empty distribution yields an Empty geometry, not an error.
func Build(style Style, dist models.FrequencyDistribution, cfg GeometryConfig) (ChartGeometry, error) {
	g := ChartGeometry{Style: style, Total: dist.Total()}
	switch style {
	case StylePie, StyleBar, StyleDonut:
	default:
		return g, fmt.Errorf("%w: %d", ErrUnknownStyle, int(style))
	}
	if g.Total == 0 {
		g.Empty = true
		return g, nil
	}

	switch style {
	case StylePie:
		g.Wedges = pieWedges(dist, cfg)
	case StyleBar:
		g.Bars, g.MaxCount = bars(dist, cfg)
	case StyleDonut:
		g.Wedges = donutWedges(dist, cfg)
		g.Hole = &Disc{Radius: cfg.HoleRadius, Color: "#FFFFFF"}
	}
	return g, nil
}

// polar converts an angle in degrees and a radius into chart coordinates.
func polar(deg, r float64) Point {
	rad := deg * math.Pi / 180
	return Point{X: r * math.Cos(rad), Y: r * math.Sin(rad)}
}

// sweep lays out spans clockwise from the start angle. Zero-count entries are skipped.
func sweep(dist models.FrequencyDistribution, cfg GeometryConfig) []Wedge {
	total := float64(dist.Total())
	wedges := make([]Wedge, 0, dist.Len())
	angle := cfg.StartAngle
	for i, e := range dist.Entries {
		if e.Count <= 0 {
			continue
		}
		share := float64(e.Count) / total
		span := 360 * share
		w := Wedge{
			Label:        e.Value,
			Count:        e.Count,
			Share:        share,
			Theta1:       angle - span,
			Theta2:       angle,
			Color:        cfg.Color(i),
			PercentLabel: fmt.Sprintf("%1.1f%%", share*100),
		}
		w.Bisector = (w.Theta1 + w.Theta2) / 2
		wedges = append(wedges, w)
		angle -= span
	}
	return wedges
}

func pieWedges(dist models.FrequencyDistribution, cfg GeometryConfig) []Wedge {
	wedges := sweep(dist, cfg)
	for i := range wedges {
		w := &wedges[i]
		w.PercentAt = polar(w.Bisector, cfg.PercentDistance)
		w.LabelAt = polar(w.Bisector, cfg.LabelDistance)
	}
	return wedges
}

func donutWedges(dist models.FrequencyDistribution, cfg GeometryConfig) []Wedge {
	wedges := sweep(dist, cfg)
	for i := range wedges {
		w := &wedges[i]
		w.Explode = cfg.LargeExplode
		if w.Share < cfg.SmallShareThreshold {
			w.Explode = cfg.SmallExplode
		}
		w.Center = polar(w.Bisector, w.Explode)
		w.External = externalLabel(w.Bisector, fmt.Sprintf("%s\n%s", w.Label, w.PercentLabel), cfg)
	}
	return wedges
}

func externalLabel(bisector float64, text string, cfg GeometryConfig) *ExternalLabel {
	anchor := polar(bisector, cfg.LabelAnchorRadius)
	align := AlignRight
	if math.Cos(bisector*math.Pi/180) > 0 {
		align = AlignLeft
	}
	return &ExternalLabel{
		Text:   text,
		Anchor: anchor,
		At:     polar(bisector, cfg.LabelTextRadius),
		Align:  align,
	}
}

// bars stacks entries ascending by count from the bottom, so the largest bar is on top.
func bars(dist models.FrequencyDistribution, cfg GeometryConfig) ([]Bar, int) {
	entries := append([]models.ValueCount(nil), dist.Entries...)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count < entries[j].Count
	})
	maxCount := 0
	for _, e := range entries {
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}
	pad := cfg.BarLabelPad * float64(maxCount)
	out := make([]Bar, len(entries))
	for i, e := range entries {
		y := float64(i)
		out[i] = Bar{
			Label:      e.Value,
			Count:      e.Count,
			Position:   i,
			Length:     float64(e.Count),
			ValueLabel: fmt.Sprintf("%d", e.Count),
			ValueAt:    Point{X: float64(e.Count) + pad, Y: y},
			Color:      cfg.Color(i),
		}
	}
	return out, maxCount
}
