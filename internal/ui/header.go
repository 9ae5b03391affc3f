package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo contains information to display in the header.
type HeaderInfo struct {
	Version string // e.g. "v0.3.0"
	Tagline string // optional
	Detail  string // optional muted line, e.g. the config path
}

// HeaderWidth is the default width of the header divider.
const HeaderWidth = 50

// RenderHeader renders the branded upmon header.
func RenderHeader(info HeaderInfo) string {
	var out strings.Builder

	out.WriteString(lipgloss.NewStyle().Foreground(ColorNeonPink).Bold(true).Render("upmon"))
	if info.Version != "" {
		out.WriteString(" ")
		out.WriteString(lipgloss.NewStyle().Foreground(ColorNeonCyan).Render(info.Version))
	}
	out.WriteString("\n")

	if info.Tagline != "" {
		out.WriteString(lipgloss.NewStyle().Foreground(ColorSecondary).Render(info.Tagline))
		out.WriteString("\n")
	}
	if info.Detail != "" {
		out.WriteString(MutedStyle().Render(info.Detail))
		out.WriteString("\n")
	}

	out.WriteString(lipgloss.NewStyle().Foreground(ColorGlassBorder).Render(strings.Repeat("━", HeaderWidth)))
	out.WriteString("\n")
	return out.String()
}
