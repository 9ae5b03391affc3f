package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/upmon/internal/uptime"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "nested", "state.yaml"), Options{
		HistorySize: 2,
		Now:         func() time.Time { return fixedNow },
	})
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	s := newTestFileStore(t)

	require.NoError(t, s.Ping(context.Background()))
	res, err := s.MonitorStates(context.Background(), uptime.Request{})
	require.NoError(t, err)
	assert.Empty(t, res.Summaries)
}

func TestFileStore_Lifecycle(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	m, err := s.AddMonitor(ctx, "Home", "https://example.com")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.RecordCheck(ctx, uptime.Check{
			MonitorID: m.ID,
			Location:  "local",
			Status:    uptime.StatusDown,
			Timestamp: fixedNow.Add(-time.Duration(3-i) * time.Minute),
			Duration:  120 * time.Millisecond,
		}))
	}

	res, err := s.MonitorStates(ctx, uptime.Request{PageSize: 10})
	require.NoError(t, err)
	require.Len(t, res.Summaries, 1)
	assert.Equal(t, "Home", res.Summaries[0].State.Monitor.Name)
	assert.Equal(t, uptime.StatusDown, res.Summaries[0].State.Monitor.Status)
	require.NotNil(t, res.Summaries[0].Histogram)
	assert.Equal(t, 2, res.Summaries[0].Histogram.Count, "history is trimmed to HistorySize")

	data, err := os.ReadFile(s.path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "url: https://example.com")

	require.NoError(t, s.RemoveMonitor(ctx, m.ID))
	monitors, err := s.ListMonitors(ctx)
	require.NoError(t, err)
	assert.Empty(t, monitors)
}

func TestFileStore_NotFound(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	assert.Error(t, s.RemoveMonitor(ctx, "nope"))
	assert.Error(t, s.RecordCheck(ctx, uptime.Check{MonitorID: "nope"}))
}

func TestFileStore_EnsureMonitor(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	first, created, err := s.EnsureMonitor(ctx, "Home", "https://example.com")
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := s.EnsureMonitor(ctx, "Home", "https://example.com")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)
}

func TestFileStore_InvalidYAML(t *testing.T) {
	s := newTestFileStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.path), 0755))
	require.NoError(t, os.WriteFile(s.path, []byte("monitors: [unclosed"), 0644))

	_, err := s.MonitorStates(context.Background(), uptime.Request{})
	assert.Error(t, err)
	assert.Error(t, s.Ping(context.Background()))
}

func TestFileStore_ReadsHandWrittenSnapshot(t *testing.T) {
	s := newTestFileStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.path), 0755))
	content := `monitors:
  - id: b
    url: https://b.example.com
  - id: a
    name: Alpha
    url: https://a.example.com
    checks:
      - monitor_id: a
        location: us-east
        status: up
        timestamp: 2026-03-14T11:59:00Z
`
	require.NoError(t, os.WriteFile(s.path, []byte(content), 0644))

	res, err := s.MonitorStates(context.Background(), uptime.Request{PageSize: 1})
	require.NoError(t, err)
	require.Len(t, res.Summaries, 1)
	assert.Equal(t, "a", res.Summaries[0].MonitorID)
	assert.Equal(t, uptime.StatusUp, res.Summaries[0].State.Monitor.Status)
	assert.NotEmpty(t, res.NextPagePagination)
	assert.Equal(t, 2, res.TotalSummaryCount)
}
