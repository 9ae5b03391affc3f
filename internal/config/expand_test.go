package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	t.Setenv("USER", "alice")
	home, _ := os.UserHomeDir()
	host := defaultLocation()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "USER expands", input: "/data/${USER}/state.yaml", expected: "/data/alice/state.yaml"},
		{name: "HOME expands", input: "${HOME}/upmon", expected: home + "/upmon"},
		{name: "HOSTNAME expands", input: "node-${HOSTNAME}", expected: "node-" + host},
		{name: "plain path unchanged", input: "/opt/upmon/state.yaml", expected: "/opt/upmon/state.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Expand(tt.input))
		})
	}
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	assert.Equal(t, "", ExpandTilde(""))
	assert.Equal(t, home, ExpandTilde("~"))
	assert.Equal(t, filepath.Join(home, "upmon.yaml"), ExpandTilde("~/upmon.yaml"))
	assert.Equal(t, "/abs/path", ExpandTilde("/abs/path"))
	assert.Equal(t, "~other/x", ExpandTilde("~other/x"))
}
