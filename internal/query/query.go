// Package query wraps a monitor-state source the way the list view consumes
// it: a result carries optional data, a loading flag, and an error list.
package query

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/upmon/internal/errors"
	"github.com/rileyhilliard/upmon/internal/logger"
	"github.com/rileyhilliard/upmon/internal/uptime"
)

// DefaultTimeout bounds a single fetch when the caller passes zero.
const DefaultTimeout = 10 * time.Second

// Source is anything that can answer a monitor-states query.
type Source interface {
	MonitorStates(ctx context.Context, req uptime.Request) (*uptime.MonitorSummaryResult, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, req uptime.Request) (*uptime.MonitorSummaryResult, error)

// MonitorStates calls f.
func (f SourceFunc) MonitorStates(ctx context.Context, req uptime.Request) (*uptime.MonitorSummaryResult, error) {
	return f(ctx, req)
}

// Data is the payload of a successful query. MonitorStates may be nil.
type Data struct {
	MonitorStates *uptime.MonitorSummaryResult
}

// Result is what the view receives for one query. Data is nil while the
// first load is in flight or when the query failed; Errors is empty on success.
type Result struct {
	Data    *Data
	Loading bool
	Errors  errors.List
}

// Pending is the result handed to the view before a fetch completes.
func Pending(prev Result) Result {
	prev.Loading = true
	return prev
}

// Summaries returns the fetched summaries, or nil when there is no data.
func (r Result) Summaries() []uptime.MonitorSummary {
	if r.Data == nil || r.Data.MonitorStates == nil {
		return nil
	}
	return r.Data.MonitorStates.Summaries
}

// NextPagePagination returns the forward token, or "" when absent.
func (r Result) NextPagePagination() string {
	if r.Data == nil || r.Data.MonitorStates == nil {
		return ""
	}
	return r.Data.MonitorStates.NextPagePagination
}

// PrevPagePagination returns the backward token, or "" when absent.
func (r Result) PrevPagePagination() string {
	if r.Data == nil || r.Data.MonitorStates == nil {
		return ""
	}
	return r.Data.MonitorStates.PrevPagePagination
}

// Fetch runs req against src with a timeout and folds the outcome into a
// Result. Joined errors become one list entry each. A panicking source is
// reported as an error rather than crashing the caller.
func Fetch(ctx context.Context, src Source, req uptime.Request, timeout time.Duration) (res Result) {
	log := logger.Default()
	if src == nil {
		return Result{Errors: errors.List{errors.New(errors.ErrQuery,
			"No monitor source configured",
			"Check the store section of your .upmon.yaml")}}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			log.Error("monitor states query panicked: %v", r)
			res = Result{Errors: errors.List{errors.New(errors.ErrQuery,
				fmt.Sprintf("Monitor query failed: %v", r), "")}}
		}
	}()

	start := time.Now()
	log.Debug("query monitor states: page_size=%d pagination=%q filters=%v",
		req.PageSize, req.Pagination, req.Filters.Active())

	out, err := src.MonitorStates(ctx, req)
	if err != nil {
		log.Warn("monitor states query failed after %s: %v", time.Since(start).Round(time.Millisecond), err)
		return Result{Errors: errors.Flatten(err)}
	}

	log.Debug("monitor states query returned in %s", time.Since(start).Round(time.Millisecond))
	return Result{Data: &Data{MonitorStates: out}}
}

// ResultMsg delivers a completed fetch to a Bubble Tea model. Seq lets the
// model ignore results from requests it has since superseded.
type ResultMsg struct {
	Seq    int
	Result Result
}

// Cmd returns a tea.Cmd that performs Fetch in the background.
func Cmd(seq int, src Source, req uptime.Request, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{Seq: seq, Result: Fetch(context.Background(), src, req, timeout)}
	}
}
