package monitor

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/upmon/internal/ui"
	"github.com/rileyhilliard/upmon/internal/uptime"
)

// Fixed column widths. Name and URL split whatever is left.
const (
	statusColumnWidth   = 40
	historyColumnWidth  = 18
	expanderColumnWidth = 3
	minFlexColumnWidth  = 12
)

// columnContext carries what cell renderers need from the model.
type columnContext struct {
	props      Props
	hyperlinks bool
	now        func() time.Time
	expanded   DrawerIDs
}

// buildColumns returns the five list columns in display order.
func buildColumns(ctx columnContext) []Column {
	return []Column{
		{
			Name:  labelStatusColumn,
			Field: "state.monitor.status",
			Width: statusColumnWidth,
			Render: func(s uptime.MonitorSummary) string {
				return renderStatusColumn(s.State.Monitor.Status, s.State.Timestamp, s.State.Checks, ctx.now())
			},
		},
		{
			Name:     labelNameColumn,
			Field:    "state.monitor.name",
			Sortable: true,
			Render: func(s uptime.MonitorSummary) string {
				link := monitorDetailURL(ctx.props.BaseURL, s.MonitorID, ctx.props.LinkParameters)
				return hyperlink(ctx.hyperlinks, link, ValueStyle.Render(monitorName(s)))
			},
		},
		{
			Name:  labelURLColumn,
			Field: "state.url.full",
			Render: func(s uptime.MonitorSummary) string {
				if s.State.URL.Full == "" {
					return MutedStyle.Render("-")
				}
				return hyperlink(ctx.hyperlinks, s.State.URL.Full, LinkStyle.Render(s.State.URL.Full)) +
					" " + MutedStyle.Render(ui.SymbolPopout)
			},
		},
		{
			Name:         labelHistoryColumn,
			Field:        "histogram.points",
			Width:        historyColumnWidth,
			HideOnNarrow: true,
			Render: func(s uptime.MonitorSummary) string {
				return renderBarSeries(ctx.props.DangerColor, s.HistogramPoints())
			},
		},
		{
			Field:      "monitor_id",
			Align:      lipgloss.Right,
			Width:      expanderColumnWidth,
			IsExpander: true,
			Render: func(s uptime.MonitorSummary) string {
				if ctx.expanded.Contains(s.MonitorID) {
					return RowCursorStyle.Render(ui.SymbolCollapse)
				}
				return MutedStyle.Render(ui.SymbolExpand)
			},
			AccessibleLabel: func(s uptime.MonitorSummary) string {
				return expandRowLabel(s.MonitorID)
			},
		},
	}
}

// visibleColumns drops HideOnNarrow columns below BreakpointCompact.
func visibleColumns(cols []Column, width int) []Column {
	if width <= 0 || width >= BreakpointCompact {
		return cols
	}
	out := make([]Column, 0, len(cols))
	for _, c := range cols {
		if !c.HideOnNarrow {
			out = append(out, c)
		}
	}
	return out
}

// layoutWidths resolves each column's width for the given total width.
// Flexible columns split the leftover space evenly.
func layoutWidths(cols []Column, width int) []int {
	widths := make([]int, len(cols))
	fixed, flex := 0, 0
	for i, c := range cols {
		widths[i] = c.Width
		fixed += c.Width + 1 // one space gutter
		if c.Width == 0 {
			flex++
		}
	}
	if flex == 0 {
		return widths
	}

	share := minFlexColumnWidth
	if width > 0 {
		share = max(minFlexColumnWidth, (width-fixed-cursorWidth)/flex)
	}
	for i, c := range cols {
		if c.Width == 0 {
			widths[i] = share
		}
	}
	return widths
}
