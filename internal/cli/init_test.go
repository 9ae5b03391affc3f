package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/upmon/internal/config"
	"github.com/rileyhilliard/upmon/internal/errors"
)

func TestInit_NonInteractiveWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	err := Init(InitOptions{
		Dir:            dir,
		Backend:        config.BackendFile,
		BaseURL:        "https://status.example.com",
		NonInteractive: true,
		Out:            &out,
	})
	require.NoError(t, err)

	path := filepath.Join(dir, config.ConfigFileName)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.BackendFile, cfg.Store.Backend)
	assert.Equal(t, "https://status.example.com", cfg.BaseURL)
	assert.Equal(t, 10, cfg.List.PageSize)

	assert.Contains(t, out.String(), "Created")
	assert.Contains(t, out.String(), "upmon endpoint add")
}

func TestInit_ExistingConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))

	t.Run("refuses without overwrite", func(t *testing.T) {
		err := Init(InitOptions{Dir: dir, NonInteractive: true, Out: &bytes.Buffer{}})
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
		assert.Contains(t, err.Error(), "--force")
	})

	t.Run("overwrites when forced", func(t *testing.T) {
		err := Init(InitOptions{
			Dir:            dir,
			Backend:        config.BackendFile,
			Overwrite:      true,
			NonInteractive: true,
			Out:            &bytes.Buffer{},
		})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "backend: file")
	})
}

func TestInit_RejectsBadBackend(t *testing.T) {
	err := Init(InitOptions{
		Dir:            t.TempDir(),
		Backend:        "postgres",
		NonInteractive: true,
		Out:            &bytes.Buffer{},
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}
