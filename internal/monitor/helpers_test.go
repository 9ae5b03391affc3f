package monitor

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/upmon/internal/query"
	"github.com/rileyhilliard/upmon/internal/uptime"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func summary(id, name string, status uptime.Status) uptime.MonitorSummary {
	return uptime.MonitorSummary{
		MonitorID: id,
		State: uptime.SummaryState{
			Timestamp: testNow.Add(-3 * time.Minute),
			Monitor:   uptime.MonitorInfo{Name: name, Status: status},
			URL:       uptime.URLInfo{Full: "https://" + id + ".example.com"},
			Checks: []uptime.Check{
				{MonitorID: id, Location: "us-east", Status: status, Timestamp: testNow.Add(-3 * time.Minute)},
			},
		},
	}
}

// pagedSource serves summaries through the in-memory paginator.
func pagedSource(items []uptime.MonitorSummary) query.Source {
	return query.SourceFunc(func(_ context.Context, req uptime.Request) (*uptime.MonitorSummaryResult, error) {
		return uptime.Paginate(items, req)
	})
}

func newTestModel(src query.Source, props Props) Model {
	return NewModel(Options{
		Props:  props,
		Source: src,
		Now:    fixedClock,
	})
}

// drain runs cmd and feeds query results and save outcomes back into the
// model. Timer-driven messages are ignored so tests never sleep.
func drain(m Model, cmd tea.Cmd) Model {
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = drain(m, c)
		}
	case query.ResultMsg, pageSizeSavedMsg:
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

// press sends one key through Update and drains the resulting command.
func press(m Model, key string) Model {
	next, cmd := m.Update(keyMsg(key))
	return drain(next.(Model), cmd)
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}
