// Package monitor implements the monitor list TUI: a paginated table of
// monitored endpoints with their status, name, URL, recent history, and an
// expandable detail drawer per row.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: Holds the latest query result, page tokens, selection, and the
//     set of expanded rows
//   - Update: Processes messages (keystrokes, refresh ticks, query results)
//   - View: Projects each summary into columns and renders the table
//
// # Key Components
//
//	Model          - The Bubble Tea model for the list view
//	Column         - One display column: header, width, and a cell renderer
//	DrawerIDs      - Ordered, duplicate-free set of expanded monitor ids
//	ExpandedRowMap - Drawers derived from DrawerIDs and the current page
//	renderTable    - Header, rows, drawers, and the error/loading/empty states
//
// # Message Flow
//
// The view refreshes on a tick:
//
//  1. tickMsg fires at the configured refresh interval
//  2. fetchCmd() runs the query in the background, tagged with a sequence number
//  3. query.ResultMsg arrives; results from superseded requests are dropped
//  4. View() re-renders with the new page
//
// Paging replaces the current pagination token and refetches. Changing the
// page size calls the owner's SetPageSize callback, then refetches from the
// first page.
package monitor
