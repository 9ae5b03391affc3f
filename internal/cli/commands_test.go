package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/upmon/internal/config"
	"github.com/rileyhilliard/upmon/internal/errors"
	"github.com/rileyhilliard/upmon/internal/uptime"
)

// useFileConfig writes a file-backed config into a temp dir and points
// --config at it for the duration of the test.
func useFileConfig(t *testing.T, mutate func(*config.Config)) (string, *config.Config) {
	t.Helper()
	dir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.Store.Backend = config.BackendFile
	cfg.Store.File.Path = filepath.Join(dir, "state.yaml")
	if mutate != nil {
		mutate(cfg)
	}

	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, config.WriteDefault(path, cfg))

	orig := cfgFile
	cfgFile = path
	t.Cleanup(func() { cfgFile = orig })
	return path, cfg
}

func TestEndpointLifecycle(t *testing.T) {
	useFileConfig(t, nil)

	var out bytes.Buffer
	require.NoError(t, endpointAdd(&out, "https://example.com/health", ""))
	assert.Contains(t, out.String(), "Monitoring https://example.com/health as example.com")

	out.Reset()
	require.NoError(t, endpointList(&out))
	assert.Contains(t, out.String(), "example.com")

	cfg, _, err := loadConfig()
	require.NoError(t, err)
	st, err := openStore(t.Context(), cfg)
	require.NoError(t, err)
	monitors, err := st.ListMonitors(t.Context())
	require.NoError(t, err)
	require.Len(t, monitors, 1)
	require.NoError(t, st.Close())

	out.Reset()
	require.NoError(t, endpointRemove(&out, monitors[0].ID))
	assert.Contains(t, out.String(), "Removed "+monitors[0].ID)

	out.Reset()
	require.NoError(t, endpointList(&out))
	assert.Contains(t, out.String(), "No monitors yet")
}

func TestEndpointAdd_RejectsBadURL(t *testing.T) {
	useFileConfig(t, nil)

	err := endpointAdd(&bytes.Buffer{}, "ftp://example.com", "files")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestEndpointRemove_Unknown(t *testing.T) {
	useFileConfig(t, nil)

	err := endpointRemove(&bytes.Buffer{}, "nope")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrStore))
}

func TestOpenStore_SeedsConfiguredMonitors(t *testing.T) {
	_, cfg := useFileConfig(t, func(c *config.Config) {
		c.Monitors = []config.MonitorConfig{
			{Name: "API", URL: "https://api.example.com"},
			{URL: "https://www.example.com"},
		}
	})

	for range 2 {
		st, err := openStore(t.Context(), cfg)
		require.NoError(t, err)
		monitors, err := st.ListMonitors(t.Context())
		require.NoError(t, err)
		require.NoError(t, st.Close())

		names := make([]string, 0, len(monitors))
		for _, m := range monitors {
			names = append(names, m.Name)
		}
		assert.ElementsMatch(t, []string{"API", "www.example.com"}, names)
	}
}

func TestDefaultName(t *testing.T) {
	assert.Equal(t, "Homepage", defaultName("Homepage", "https://example.com"))
	assert.Equal(t, "example.com:8443", defaultName("", "https://example.com:8443/x"))
	assert.Equal(t, "not a url", defaultName("", "not a url"))
}

func TestListOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.BaseURL = "https://status.example.com"
	cfg.List.PageSize = 25
	cfg.List.LinkParameters = "?env=prod"

	t.Run("config values", func(t *testing.T) {
		opts, err := listOptions(cfg, "", ListFlags{}, nil)
		require.NoError(t, err)
		assert.Equal(t, 25, opts.PageSize)
		assert.Equal(t, "?env=prod", opts.LinkParameters)
		assert.Equal(t, "https://status.example.com", opts.BaseURL)
		assert.Equal(t, lipgloss.Color(cfg.List.DangerColor), opts.DangerColor)
		assert.Equal(t, cfg.List.RefreshInterval, opts.RefreshInterval)
		assert.False(t, opts.HasActiveFilters)
	})

	t.Run("flags win", func(t *testing.T) {
		opts, err := listOptions(cfg, "", ListFlags{
			PageSize:   50,
			Status:     "down",
			Search:     "api",
			Interval:   "5s",
			LinkParams: "?env=staging",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, 50, opts.PageSize)
		assert.Equal(t, "?env=staging", opts.LinkParameters)
		assert.Equal(t, 5*time.Second, opts.RefreshInterval)
		assert.True(t, opts.HasActiveFilters)
		assert.Equal(t, []uptime.Status{uptime.StatusDown}, opts.Filters.Statuses)
		assert.Equal(t, "api", opts.Filters.Search)
	})

	t.Run("bad flags", func(t *testing.T) {
		_, err := listOptions(cfg, "", ListFlags{PageSize: 3}, nil)
		assert.Error(t, err)
		_, err = listOptions(cfg, "", ListFlags{Status: "maybe"}, nil)
		assert.Error(t, err)
		_, err = listOptions(cfg, "", ListFlags{Interval: "1ms"}, nil)
		assert.Error(t, err)
	})
}

func TestPageSizeSaver(t *testing.T) {
	t.Run("without a config file", func(t *testing.T) {
		err := pageSizeSaver("")(25)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})

	t.Run("writes the config file", func(t *testing.T) {
		path, _ := useFileConfig(t, nil)

		require.NoError(t, pageSizeSaver(path)(50))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 50, cfg.List.PageSize)
	})
}

func TestRenderCheckResults(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Contains(t, renderCheckResults(nil), "No monitors to check")
	})

	t.Run("rows", func(t *testing.T) {
		out := renderCheckResults([]uptime.Check{
			{MonitorID: "m-up", Status: uptime.StatusUp, Duration: 120 * time.Millisecond, IP: "10.0.0.1"},
			{MonitorID: "m-down", Status: uptime.StatusDown, Error: "connection refused"},
		})
		assert.Contains(t, out, "m-up")
		assert.Contains(t, out, "120ms")
		assert.Contains(t, out, "10.0.0.1")
		assert.Contains(t, out, "connection refused")
		assert.Equal(t, 2, strings.Count(out, "m-"))
	})
}
