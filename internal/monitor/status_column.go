package monitor

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/rileyhilliard/upmon/internal/uptime"
)

// statusLabel renders the styled glyph and word for a status.
func statusLabel(status uptime.Status) string {
	switch status {
	case uptime.StatusUp:
		return StatusUpStyle.Render(StatusUpGlyph + " Up")
	case uptime.StatusDown:
		return StatusDownStyle.Render(StatusDownGlyph + " Down")
	default:
		return StatusUnknownStyle.Render(StatusUnknownGlyph + " Unknown")
	}
}

// locationSummary reports how many locations agree with status, e.g.
// "in 2/3 locations". It is empty when there is at most one location.
func locationSummary(status uptime.Status, checks []uptime.Check) string {
	if len(checks) <= 1 {
		return ""
	}
	n := 0
	for _, c := range checks {
		if c.Status == status {
			n++
		}
	}
	return fmt.Sprintf("in %d/%d locations", n, len(checks))
}

// renderStatusColumn renders the status cell followed by the relative time
// of the last check and the location summary.
func renderStatusColumn(status uptime.Status, timestamp time.Time, checks []uptime.Check, now time.Time) string {
	out := statusLabel(status)
	if !timestamp.IsZero() {
		out += " " + MutedStyle.Render(humanize.RelTime(timestamp, now, "ago", "from now"))
	}
	if loc := locationSummary(status, checks); loc != "" {
		out += " " + MutedStyle.Render(loc)
	}
	return out
}
