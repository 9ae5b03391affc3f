package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

var sparklineBlockRunes = []rune(sparklineBlocks)

// RenderSparkline renders the most recent width values as a single-line
// sparkline, scaled between the series min and max.
func RenderSparkline(data []float64, width int, color lipgloss.TerminalColor) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}

	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		minVal = min(minVal, v)
		maxVal = max(maxVal, v)
	}

	var sb strings.Builder
	sb.Grow(len(data) * 3)

	valueRange := maxVal - minVal
	for _, v := range data {
		if valueRange == 0 {
			sb.WriteRune(sparklineBlockRunes[len(sparklineBlockRunes)/2])
			continue
		}
		sb.WriteRune(blockFor((v - minVal) / valueRange))
	}

	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}

// Bar is one column of a bar series.
type Bar struct {
	Value     float64
	Highlight bool
}

// RenderBars renders one block per bar scaled against maxVal. Highlighted
// bars use the accent color, the rest use base. A zero bar renders the
// lowest block so every bucket keeps its slot.
func RenderBars(bars []Bar, maxVal float64, accent, base lipgloss.TerminalColor) string {
	if len(bars) == 0 {
		return ""
	}

	accentStyle := lipgloss.NewStyle().Foreground(accent)
	baseStyle := lipgloss.NewStyle().Foreground(base)

	var sb strings.Builder
	for _, b := range bars {
		r := sparklineBlockRunes[0]
		if maxVal > 0 && b.Value > 0 {
			r = blockFor(b.Value / maxVal)
		}
		if b.Highlight {
			sb.WriteString(accentStyle.Render(string(r)))
		} else {
			sb.WriteString(baseStyle.Render(string(r)))
		}
	}
	return sb.String()
}

// blockFor maps a normalized value in [0, 1] to a block rune.
func blockFor(normalized float64) rune {
	numLevels := len(sparklineBlockRunes)
	level := int(normalized * float64(numLevels-1))
	if level < 0 {
		level = 0
	} else if level >= numLevels {
		level = numLevels - 1
	}
	return sparklineBlockRunes[level]
}
