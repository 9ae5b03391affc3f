package monitor

import (
	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette
const (
	ColorDarkBg    = lipgloss.Color("#0A0A0F")
	ColorSurfaceBg = lipgloss.Color("#12121A")
	ColorBorder    = lipgloss.Color("#2A2A4A")

	ColorHealthy  = lipgloss.Color("#39FF14") // Neon green
	ColorWarning  = lipgloss.Color("#FFAA00") // Electric amber
	ColorCritical = lipgloss.Color("#FF0055") // Hot red-pink

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	ColorAccent    = lipgloss.Color("#FF2E97") // Neon pink
	ColorAccentDim = lipgloss.Color("#BF40FF") // Neon purple

	ColorLink = lipgloss.Color("#00FFFF") // Neon cyan
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	// Table styles
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary).
				Bold(true)

	TableRuleStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	RowSelectedStyle = lipgloss.NewStyle().
				Background(ColorSurfaceBg).
				Bold(true)

	RowCursorStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	LinkStyle = lipgloss.NewStyle().
			Foreground(ColorLink).
			Underline(true)

	DrawerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccentDim).
			Padding(0, 1).
			MarginLeft(2)

	ErrorBannerStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorCritical).
				Foreground(ColorCritical).
				Padding(0, 1)

	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Padding(1, 2)

	// Status indicator styles
	StatusUpStyle = lipgloss.NewStyle().
			Foreground(ColorHealthy)

	StatusDownStyle = lipgloss.NewStyle().
			Foreground(ColorCritical).
			Bold(true)

	StatusUnknownStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	// Pager styles
	PagerEnabledStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	PagerDisabledStyle = lipgloss.NewStyle().
				Foreground(ColorBorder)
)

// Status indicator glyphs
const (
	StatusUpGlyph      = "◉"
	StatusDownGlyph    = "◌"
	StatusUnknownGlyph = "◔"
)
