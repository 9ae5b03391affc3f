package monitor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rileyhilliard/upmon/internal/config"
	"github.com/rileyhilliard/upmon/internal/uptime"
)

// normalizePageSize snaps size to a selectable option, falling back to the
// default page size.
func normalizePageSize(size int) int {
	if slices.Contains(config.PageSizeOptions, size) {
		return size
	}
	return uptime.DefaultPageSize
}

// stepPageSize moves delta options away from current, clamped to the ends.
func stepPageSize(current, delta int) int {
	opts := config.PageSizeOptions
	i := slices.Index(opts, normalizePageSize(current))
	if i < 0 {
		i = 0
	}
	i = max(0, min(len(opts)-1, i+delta))
	return opts[i]
}

// renderPageSizeSelector shows every option with the active one highlighted.
func renderPageSizeSelector(current int) string {
	parts := make([]string, 0, len(config.PageSizeOptions))
	for _, n := range config.PageSizeOptions {
		if n == current {
			parts = append(parts, PagerEnabledStyle.Render(fmt.Sprintf("[%d]", n)))
			continue
		}
		parts = append(parts, MutedStyle.Render(fmt.Sprintf(" %d ", n)))
	}
	return LabelStyle.Render("Rows per page: ") + strings.Join(parts, "") +
		MutedStyle.Render(" (-/+)")
}
