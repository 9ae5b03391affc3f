package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// cursorWidth is the gutter reserved for the selection marker.
const cursorWidth = 2

// renderTable draws the monitor table. Exactly one of the error banner,
// the loader, the empty-state message, or the rows is shown below the
// header, in that order of precedence.
func renderTable(p TableProps) string {
	cols := visibleColumns(p.Columns, p.Width)
	widths := layoutWidths(cols, p.Width)

	var b strings.Builder
	if p.Label != "" {
		b.WriteString(MutedStyle.Render(p.Label))
		b.WriteString("\n")
	}
	b.WriteString(renderHeaderRow(cols, widths))
	b.WriteString("\n")
	b.WriteString(TableRuleStyle.Render(strings.Repeat("─", rowWidth(widths))))
	b.WriteString("\n")

	switch {
	case p.Error != "":
		b.WriteString(ErrorBannerStyle.Render(p.Error))
	case p.Loading:
		b.WriteString(EmptyStateStyle.Render(strings.TrimSpace(p.Spinner + " " + msgLoading + "...")))
	case len(p.Items) == 0:
		b.WriteString(EmptyStateStyle.Render(p.NoItemsMessage))
	default:
		rows := make([]string, 0, len(p.Items))
		for i, item := range p.Items {
			cells := make([]string, len(cols))
			for j, c := range cols {
				cells[j] = renderCell(c.Render(item), widths[j], c.Align)
			}
			rows = append(rows, renderRow(cells, i == p.Selected))
			if drawer, ok := p.ExpandedRows[item.MonitorID]; ok {
				rows = append(rows, drawer)
			}
		}
		b.WriteString(strings.Join(rows, "\n"))
	}

	return b.String()
}

func renderHeaderRow(cols []Column, widths []int) string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = renderCell(TableHeaderStyle.Render(c.Name), widths[i], c.Align)
	}
	return strings.Repeat(" ", cursorWidth) + strings.Join(cells, " ")
}

func renderRow(cells []string, selected bool) string {
	cursor := strings.Repeat(" ", cursorWidth)
	if selected {
		cursor = RowCursorStyle.Render("›") + " "
	}
	return cursor + strings.Join(cells, " ")
}

// renderCell truncates content to width and aligns it within the cell.
func renderCell(content string, width int, align lipgloss.Position) string {
	if width <= 0 {
		return ""
	}
	content = ansi.Truncate(content, width, "…")
	return lipgloss.PlaceHorizontal(width, align, content)
}

func rowWidth(widths []int) int {
	total := cursorWidth
	for _, w := range widths {
		total += w + 1
	}
	return max(0, total-1)
}
