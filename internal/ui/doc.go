// Package ui provides terminal UI building blocks shared by upmon's CLI
// commands and the monitor list TUI.
//
// # Components Overview
//
//	Spinner      - Animated status line for one-shot CLI operations
//	SpinnerFrames - Frames for Bubble Tea spinners (the list view's loader)
//	Sparkline    - Mini line graphs for check latency
//	Bars         - Fixed-height bar series for up/down histograms
//	SimpleTable  - Non-interactive tables for `endpoint list`
//	Header       - Branded header used by `upmon init`
//
// # Color Scheme
//
// Semantic colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Up, completed
//	ColorError     (red)    - Down, failed
//	ColorWarning   (yellow) - Skipped or degraded
//	ColorMuted     (gray)   - Secondary text, timing info
//
// Use DisableColors() to switch to monochrome output (for --no-color).
package ui
