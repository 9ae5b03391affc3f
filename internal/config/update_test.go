package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavePageSize(t *testing.T) {
	tests := []struct {
		name         string
		initialYAML  string
		size         int
		wantContains []string
		wantErr      bool
	}{
		{
			name: "replace existing page size",
			initialYAML: `version: 1
list:
  page_size: 10
  danger_color: "#FF0055"
`,
			size:         25,
			wantContains: []string{"page_size: 25", `danger_color: "#FF0055"`},
		},
		{
			name: "add page size to list section",
			initialYAML: `version: 1
list:
  danger_color: "#FF0055"
`,
			size:         50,
			wantContains: []string{"page_size: 50", "danger_color"},
		},
		{
			name: "create list section and keep comments",
			initialYAML: `# my monitors
version: 1
store:
  backend: redis
`,
			size:         5,
			wantContains: []string{"# my monitors", "list:", "page_size: 5", "backend: redis"},
		},
		{
			name:        "reject unsupported size",
			initialYAML: "version: 1\n",
			size:        7,
			wantErr:     true,
		},
		{
			name:        "list is not a mapping",
			initialYAML: "list: [1, 2]\n",
			size:        10,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ConfigFileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.initialYAML), 0644))

			err := SavePageSize(path, tt.size)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			for _, want := range tt.wantContains {
				assert.Contains(t, string(data), want)
			}

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.size, cfg.List.PageSize)
		})
	}
}

func TestSavePageSize_MissingFile(t *testing.T) {
	err := SavePageSize(filepath.Join(t.TempDir(), "missing.yaml"), 10)
	assert.Error(t, err)
}

func TestWriteDefault_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	cfg := DefaultConfig()
	cfg.Store.Backend = BackendFile
	cfg.Monitors = []MonitorConfig{{Name: "Home", URL: "https://example.com"}}

	require.NoError(t, WriteDefault(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.List, loaded.List)
	assert.Equal(t, cfg.Check.Interval, loaded.Check.Interval)
	assert.Equal(t, BackendFile, loaded.Store.Backend)
	assert.Equal(t, cfg.Monitors, loaded.Monitors)
}
