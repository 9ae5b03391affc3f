package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/rileyhilliard/upmon/internal/ui"
	"github.com/rileyhilliard/upmon/internal/uptime"
)

var (
	drawerTitleStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	drawerKeyStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Width(12)
)

// renderDrawer renders the expanded detail panel for one monitor.
func renderDrawer(s uptime.MonitorSummary, now time.Time, width int) string {
	var lines []string

	lines = append(lines, drawerTitleStyle.Render(monitorName(s))+"  "+statusLabel(s.State.Monitor.Status))
	lines = append(lines, drawerKeyStyle.Render("ID")+ValueStyle.Render(s.MonitorID))
	lines = append(lines, drawerKeyStyle.Render("URL")+ValueStyle.Render(s.State.URL.Full))
	if !s.State.Timestamp.IsZero() {
		lines = append(lines, drawerKeyStyle.Render("Last check")+
			ValueStyle.Render(s.State.Timestamp.Local().Format(time.DateTime))+
			MutedStyle.Render(" ("+humanize.RelTime(s.State.Timestamp, now, "ago", "from now")+")"))
	}
	if uptimeLine := renderUptimeLine(s.HistogramPoints()); uptimeLine != "" {
		lines = append(lines, drawerKeyStyle.Render("Uptime")+uptimeLine)
	}

	lines = append(lines, "")
	if len(s.State.Checks) == 0 {
		lines = append(lines, MutedStyle.Render("No checks recorded yet"))
	} else {
		lines = append(lines, renderCheckRows(s.State.Checks, now)...)
	}

	style := DrawerStyle
	if width > 8 {
		style = style.Width(width - 6)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// renderUptimeLine summarizes the histogram as an uptime percentage plus a
// sparkline of up checks per bucket.
func renderUptimeLine(points []uptime.SummaryHistogramPoint) string {
	up, total := 0, 0
	series := make([]float64, len(points))
	for i, p := range points {
		up += p.Up
		total += p.Up + p.Down
		series[i] = float64(p.Up)
	}
	if total == 0 {
		return ""
	}
	pct := float64(up) / float64(total) * 100
	return ValueStyle.Render(fmt.Sprintf("%.1f%%", pct)) + " " +
		ui.RenderSparkline(series, len(series), ColorHealthy) +
		MutedStyle.Render(fmt.Sprintf(" (%d checks)", total))
}

// renderCheckRows lists the latest check from each location.
func renderCheckRows(checks []uptime.Check, now time.Time) []string {
	header := TableHeaderStyle.Render(
		ui.PadRight("Location", 16) + ui.PadRight("Status", 12) +
			ui.PadRight("IP", 18) + ui.PadRight("Duration", 10) + "Checked")
	rows := []string{header}

	for _, c := range checks {
		row := ui.PadRight(ui.Truncate(c.Location, 15), 16) +
			ui.PadRight(statusLabel(c.Status), 12) +
			ui.PadRight(orDash(c.IP), 18) +
			ui.PadRight(c.Duration.Round(time.Millisecond).String(), 10) +
			MutedStyle.Render(humanize.RelTime(c.Timestamp, now, "ago", "from now"))
		rows = append(rows, row)
		if c.Error != "" {
			rows = append(rows, "  "+StatusDownStyle.UnsetBold().Render(c.Error))
		}
	}
	return rows
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
