package monitor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/upmon/internal/ui"
	"github.com/rileyhilliard/upmon/internal/uptime"
)

// renderBarSeries draws one bar per histogram bucket. Bar height follows
// the bucket's down count and buckets with any downtime use dangerColor.
// nil points mean the monitor has no history.
func renderBarSeries(dangerColor lipgloss.Color, points []uptime.SummaryHistogramPoint) string {
	if points == nil {
		return MutedStyle.Render(msgNoHistory)
	}

	bars := make([]ui.Bar, len(points))
	maxDown := 0
	for i, p := range points {
		bars[i] = ui.Bar{Value: float64(p.Down), Highlight: p.Down > 0}
		maxDown = max(maxDown, p.Down)
	}
	return ui.RenderBars(bars, float64(maxDown), dangerColor, ColorBorder)
}
