// Package uptime holds the monitor summary data model shared by the stores,
// the query layer, and the monitor list dashboard.
package uptime

import (
	"strings"
	"time"
)

// Status is the observed health of a monitor or a single check.
type Status string

const (
	StatusUp      Status = "up"
	StatusDown    Status = "down"
	StatusUnknown Status = "unknown"
)

// ParseStatus maps a status string to a Status. Anything unrecognized is unknown.
func ParseStatus(s string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusUp:
		return StatusUp
	case StatusDown:
		return StatusDown
	default:
		return StatusUnknown
	}
}

// Check is the result of probing a monitor once from one location.
type Check struct {
	MonitorID string        `json:"monitor_id" yaml:"monitor_id"`
	Location  string        `json:"location" yaml:"location"`
	IP        string        `json:"ip,omitempty" yaml:"ip,omitempty"`
	Status    Status        `json:"status" yaml:"status"`
	Timestamp time.Time     `json:"timestamp" yaml:"timestamp"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	Error     string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// MonitorInfo is the monitor-level part of a summary state.
type MonitorInfo struct {
	Name   string
	Status Status
}

// URLInfo carries the monitored URL.
type URLInfo struct {
	Full string
}

// SummaryState is the latest observed state of one monitor.
type SummaryState struct {
	Timestamp time.Time
	Monitor   MonitorInfo
	URL       URLInfo
	// Checks holds the most recent check per location.
	Checks []Check
}

// SummaryHistogramPoint is a time bucket of up/down check counts.
type SummaryHistogramPoint struct {
	Timestamp time.Time
	Up        int
	Down      int
}

// SummaryHistogram is the recent history of a monitor, oldest bucket first.
type SummaryHistogram struct {
	Count  int
	Points []SummaryHistogramPoint
}

// MonitorSummary is one monitored endpoint's latest observed state.
type MonitorSummary struct {
	MonitorID string
	State     SummaryState
	// Histogram is nil when no history is available.
	Histogram *SummaryHistogram
}

// HistogramPoints returns the histogram points, or nil when there is no history.
func (s MonitorSummary) HistogramPoints() []SummaryHistogramPoint {
	if s.Histogram == nil {
		return nil
	}
	return s.Histogram.Points
}

// MonitorSummaryResult is one page of summaries plus the cursors around it.
// Summaries keep the order the source returned them in.
type MonitorSummaryResult struct {
	Summaries          []MonitorSummary
	NextPagePagination string
	PrevPagePagination string
	TotalSummaryCount  int
}

// Filters narrows the set of monitors a query returns.
type Filters struct {
	Statuses []Status
	Search   string
}

// Active reports whether any filter is set.
func (f Filters) Active() bool {
	return len(f.Statuses) > 0 || strings.TrimSpace(f.Search) != ""
}

// Match reports whether summary passes the filters. Search is a
// case-insensitive substring match against id, name, and URL.
func (f Filters) Match(s MonitorSummary) bool {
	if len(f.Statuses) > 0 {
		found := false
		for _, st := range f.Statuses {
			if st == s.State.Monitor.Status {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.MonitorID), q) ||
		strings.Contains(strings.ToLower(s.State.Monitor.Name), q) ||
		strings.Contains(strings.ToLower(s.State.URL.Full), q)
}

// Request is a single monitor-states query.
type Request struct {
	PageSize   int
	Pagination string
	Filters    Filters
}
