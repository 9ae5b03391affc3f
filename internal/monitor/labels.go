package monitor

import (
	"fmt"

	"github.com/rileyhilliard/upmon/internal/uptime"
)

// User-facing strings for the list view.
const (
	labelStatusColumn  = "Status"
	labelNameColumn    = "Name"
	labelURLColumn     = "URL"
	labelHistoryColumn = "Downtime history"
	labelListTitle     = "Monitor status"

	msgNoMonitorSelected = "No monitors found matching the current filters"
	msgNoData            = "No uptime monitors found. Add one with `upmon endpoint add <url>`"
	msgLoading           = "Loading monitors"
	msgNoHistory         = "No history"
)

// monitorName is the link text for a monitor's name cell.
func monitorName(s uptime.MonitorSummary) string {
	if s.State.Monitor.Name == "" {
		return fmt.Sprintf("Unnamed - %s", s.MonitorID)
	}
	return s.State.Monitor.Name
}

// noItemsMessage picks the empty-state message.
func noItemsMessage(hasActiveFilters bool) string {
	if hasActiveFilters {
		return msgNoMonitorSelected
	}
	return msgNoData
}

func expandRowLabel(id string) string {
	return fmt.Sprintf("Expand row for monitor with ID %s", id)
}

func tableLabel(n int) string {
	return fmt.Sprintf("Monitor list with %d items", n)
}
