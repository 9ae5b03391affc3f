package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓"
	SymbolFail     = "✗"
	SymbolPending  = "○"
	SymbolComplete = "●"
	SymbolSkipped  = "⊘"

	SymbolExpand   = "▾" // row collapsed, press to expand
	SymbolCollapse = "▴" // row expanded
	SymbolPopout   = "↗" // external link
)
