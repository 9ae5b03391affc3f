package monitor

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/upmon/internal/errors"
	"github.com/rileyhilliard/upmon/internal/logger"
	"github.com/rileyhilliard/upmon/internal/query"
	"github.com/rileyhilliard/upmon/internal/ui"
	"github.com/rileyhilliard/upmon/internal/uptime"
)

// Model is the Bubble Tea model for the monitor list.
type Model struct {
	props      Props
	source     query.Source
	filters    uptime.Filters
	interval   time.Duration
	timeout    time.Duration
	hyperlinks bool
	now        func() time.Time

	result     query.Result
	pagination string // token for the page being shown; "" is the first page
	seq        int    // sequence number of the newest fetch

	expanded   DrawerIDs
	selected   int
	spinner    spinner.Model
	width      int
	height     int
	lastUpdate time.Time
	showHelp   bool
	quitting   bool
	notice     string // one-line feedback, e.g. a failed page-size save
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// pageSizeSavedMsg reports the outcome of persisting a page-size change.
type pageSizeSavedMsg struct {
	size int
	err  error
}

// NewModel creates a list model. The first fetch starts in Init.
func NewModel(opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	props := opts.Props
	props.PageSize = normalizePageSize(props.PageSize)
	if props.DangerColor == "" {
		props.DangerColor = ColorCritical
	}

	return Model{
		props:      props,
		source:     opts.Source,
		filters:    opts.Filters,
		interval:   opts.RefreshInterval,
		timeout:    opts.Timeout,
		hyperlinks: opts.Hyperlinks,
		now:        now,
		result:     query.Result{Loading: true},
		spinner:    ui.NewBubblesSpinner(ColorAccent),
	}
}

// Init starts the first fetch, the loader animation, and the refresh timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		query.Cmd(m.seq, m.source, m.request(), m.timeout),
		m.spinner.Tick,
		m.tickCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		return m, tea.Batch(m.tickCmd(), m.fetch())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case query.ResultMsg:
		if msg.Seq != m.seq {
			logger.Default().Debug("dropping stale monitor states result seq=%d current=%d", msg.Seq, m.seq)
			return m, nil
		}
		m.result = msg.Result
		m.lastUpdate = m.now()
		m.clampSelection()

	case pageSizeSavedMsg:
		if msg.err != nil {
			m.notice = "Page size not saved: " + errors.FormatList(errors.Flatten(msg.err))
		} else {
			m.notice = ""
		}
	}

	return m, nil
}

// View renders the list.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// request builds the query for the current page.
func (m Model) request() uptime.Request {
	return uptime.Request{
		PageSize:   m.props.PageSize,
		Pagination: m.pagination,
		Filters:    m.filters,
	}
}

// fetch marks the result pending and starts a fetch that supersedes any
// in flight.
func (m *Model) fetch() tea.Cmd {
	m.seq++
	m.result = query.Pending(m.result)
	return query.Cmd(m.seq, m.source, m.request(), m.timeout)
}

// tickCmd schedules the next background refresh. It is nil when
// refreshing is disabled.
func (m Model) tickCmd() tea.Cmd {
	if m.interval <= 0 {
		return nil
	}
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// goToPage follows a pagination token. An empty token is a no-op.
func (m *Model) goToPage(token string) tea.Cmd {
	if token == "" {
		return nil
	}
	m.pagination = token
	m.selected = 0
	return m.fetch()
}

// changePageSize applies a new page size, asks the owner to persist it,
// and reloads from the first page.
func (m *Model) changePageSize(size int) tea.Cmd {
	if size == m.props.PageSize {
		return nil
	}
	m.props.PageSize = size
	m.pagination = ""
	m.selected = 0

	fetch := m.fetch()
	set := m.props.SetPageSize
	if set == nil {
		return fetch
	}
	save := func() tea.Msg {
		return pageSizeSavedMsg{size: size, err: set(size)}
	}
	return tea.Batch(fetch, save)
}

// toggleSelected opens or closes the selected row's drawer.
func (m *Model) toggleSelected() {
	items := m.result.Summaries()
	if m.selected < 0 || m.selected >= len(items) {
		return
	}
	m.expanded.Toggle(items[m.selected].MonitorID)
}

func (m *Model) clampSelection() {
	n := len(m.result.Summaries())
	if m.selected >= n {
		m.selected = max(0, n-1)
	}
}

// tableProps projects the model into what renderTable draws.
func (m Model) tableProps() TableProps {
	items := m.result.Summaries()
	if items == nil {
		items = []uptime.MonitorSummary{}
	}
	now := m.now()

	return TableProps{
		Items: items,
		Columns: buildColumns(columnContext{
			props:      m.props,
			hyperlinks: m.hyperlinks,
			now:        m.now,
			expanded:   m.expanded,
		}),
		ExpandedRows: BuildExpandedRowMap(m.expanded, items, func(s uptime.MonitorSummary) string {
			return renderDrawer(s, now, m.width)
		}),
		Error:          errors.FormatList(m.result.Errors),
		Loading:        showLoading(m.result.Loading, len(items)),
		Spinner:        m.spinner.View(),
		NoItemsMessage: noItemsMessage(m.props.HasActiveFilters),
		Label:          tableLabel(len(items)),
		Width:          m.width,
		Selected:       m.selected,
	}
}

// showLoading keeps the loader to the first load. Once rows are on screen,
// background refreshes leave them in place.
func showLoading(loading bool, itemCount int) bool {
	return loading && itemCount == 0
}

// PageSize returns the current page size.
func (m Model) PageSize() int { return m.props.PageSize }

// Pagination returns the token of the page being shown.
func (m Model) Pagination() string { return m.pagination }

// Expanded returns the open drawers.
func (m Model) Expanded() DrawerIDs { return m.expanded }

// Result returns the latest query result.
func (m Model) Result() query.Result { return m.result }

// SelectedMonitor returns the id of the selected row, or "".
func (m Model) SelectedMonitor() string {
	items := m.result.Summaries()
	if m.selected >= 0 && m.selected < len(items) {
		return items[m.selected].MonitorID
	}
	return ""
}

// SecondsSinceUpdate returns how many seconds have passed since the last result.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(m.now().Sub(m.lastUpdate).Seconds())
}
