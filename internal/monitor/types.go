package monitor

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/upmon/internal/query"
	"github.com/rileyhilliard/upmon/internal/uptime"
)

// Props configure how the list renders. They are owned by the caller and
// stay fixed for the life of the model, except PageSize which changes
// through SetPageSize.
type Props struct {
	// DangerColor colors down buckets in the history column.
	DangerColor lipgloss.Color
	// SuccessColor is accepted for symmetry with DangerColor and not drawn.
	SuccessColor lipgloss.Color
	// HasActiveFilters selects the empty-state message.
	HasActiveFilters bool
	// LinkParameters is appended verbatim to monitor detail links.
	LinkParameters string
	// BaseURL is the root for monitor detail links.
	BaseURL  string
	PageSize int
	// SetPageSize persists a page-size change. A nil func keeps the change
	// in memory only.
	SetPageSize func(int) error
}

// Options are everything NewModel needs beyond Props.
type Options struct {
	Props
	Source  query.Source
	Filters uptime.Filters
	// RefreshInterval is the background refetch period. Zero disables it.
	RefreshInterval time.Duration
	// Timeout bounds a single fetch; zero uses query.DefaultTimeout.
	Timeout time.Duration
	// Hyperlinks enables OSC-8 links for names and URLs.
	Hyperlinks bool
	// Now is the clock used for relative timestamps.
	Now func() time.Time
}

// Column is one display column of the monitor table.
type Column struct {
	Name  string
	Field string
	Align lipgloss.Position
	// Width is the fixed cell width; zero means the column shares the
	// leftover width with other flexible columns.
	Width    int
	Sortable bool
	// IsExpander marks the trailing toggle column.
	IsExpander bool
	// HideOnNarrow drops the column when the terminal is narrower than
	// BreakpointCompact.
	HideOnNarrow bool
	Render       func(s uptime.MonitorSummary) string
	// AccessibleLabel describes the cell for screen readers and help text.
	AccessibleLabel func(s uptime.MonitorSummary) string
}

// ExpandedRowMap maps a monitor id to its rendered drawer.
type ExpandedRowMap map[string]string

// TableProps is everything renderTable draws.
type TableProps struct {
	Items        []uptime.MonitorSummary
	Columns      []Column
	ExpandedRows ExpandedRowMap
	// Error is the combined error text; non-empty replaces the rows.
	Error   string
	Loading bool
	// Spinner is the current loader frame shown while Loading.
	Spinner        string
	NoItemsMessage string
	// Label describes the whole table for screen readers.
	Label    string
	Width    int
	Selected int
}

// Width breakpoints
const (
	BreakpointCompact = 80
)
