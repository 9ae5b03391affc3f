package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderDashboard renders the complete list view.
func (m Model) renderDashboard() string {
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(TitleStyle.Render(labelListTitle))
	b.WriteString("\n")
	b.WriteString(renderTable(m.tableProps()))
	b.WriteString("\n\n")

	b.WriteString(m.renderControls())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title bar with summary stats.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("upmon")

	var stats []string
	if res := m.result.Data; res != nil && res.MonitorStates != nil {
		stats = append(stats, fmt.Sprintf("%d monitors", res.MonitorStates.TotalSummaryCount))
	}
	if m.props.HasActiveFilters {
		stats = append(stats, "filtered")
	}
	if !m.lastUpdate.IsZero() {
		stats = append(stats, "updated "+formatAge(m.SecondsSinceUpdate()))
	}
	if m.result.Loading && !m.lastUpdate.IsZero() {
		stats = append(stats, m.spinner.View())
	}

	text := title
	if len(stats) > 0 {
		text += LabelStyle.Render(" | " + strings.Join(stats, " | "))
	}
	return HeaderStyle.Render(text)
}

// renderControls renders the page-size selector and the pager.
func (m Model) renderControls() string {
	prev := PagerControl{Direction: PagePrev, Token: m.result.PrevPagePagination()}
	next := PagerControl{Direction: PageNext, Token: m.result.NextPagePagination()}

	line := "  " + renderPageSizeSelector(m.props.PageSize) + "     " + renderPager(prev, next)
	if m.notice != "" {
		line += "\n  " + StatusDownStyle.UnsetBold().Render(m.notice)
	}
	return line
}

// renderFooter renders the keyboard hints.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"r refresh",
		"↑↓ select",
		"enter details",
		"? help",
	}
	return FooterStyle.Render(strings.Join(hints, " | "))
}

func formatAge(seconds int) string {
	switch seconds {
	case 0:
		return "just now"
	case 1:
		return "1s ago"
	default:
		return fmt.Sprintf("%ds ago", seconds)
	}
}
