package plot

import "github.com/wcharczuk/go-chart/v2"

// chartDrawer paints one geometry inside box.
type chartDrawer interface {
	draw(r chart.Renderer, box chart.Box)
}

func drawerFor(g ChartGeometry) chartDrawer {
	if g.Style == StyleBar {
		return barsForGraph{bars: g.Bars, maxCount: g.MaxCount}
	}
	return wedgesForGraph{wedges: g.Wedges, hole: g.Hole, style: g.Style}
}
