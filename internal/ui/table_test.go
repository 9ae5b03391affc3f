package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
)

func TestNewTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Name", Width: 20},
		{Title: "URL", Width: 30},
	}
	rows := []table.Row{
		{"api", "https://api.example.com"},
		{"web", "https://example.com"},
	}

	view := NewTable(columns, rows).View()

	assert.Contains(t, view, "Name")
	assert.Contains(t, view, "URL")
	assert.Contains(t, view, "api")
	assert.Contains(t, view, "https://example.com")
}

func TestNewTable_EmptyRows(t *testing.T) {
	view := NewTable([]TableColumn{{Title: "Name", Width: 20}}, []table.Row{}).View()
	assert.Contains(t, view, "Name")
}

func TestRenderSimpleTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "ID", Width: 10},
		{Title: "Name", Width: 10},
	}

	output := RenderSimpleTable(columns, [][]string{{"m-1", "api"}, {"m-2", "web"}})

	assert.Contains(t, output, "m-1")
	assert.Contains(t, output, "web")
}

func TestRenderSimpleTable_EmptyRows(t *testing.T) {
	assert.Empty(t, RenderSimpleTable([]TableColumn{{Title: "Name", Width: 20}}, nil))
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"shorter than width", "foo", 5, "foo  "},
		{"equal to width", "foobar", 6, "foobar"},
		{"longer than width", "foobar", 3, "foobar"},
		{"empty string", "", 3, "   "},
		{"zero width", "foo", 0, "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PadRight(tt.input, tt.width))
		})
	}
}

func TestPadRight_IgnoresANSI(t *testing.T) {
	styled := "\x1b[31mab\x1b[0m"
	assert.Equal(t, styled+"  ", PadRight(styled, 4))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"fits", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"cut", "abcdefgh", 5, "abcd…"},
		{"width one", "abc", 1, "…"},
		{"zero width", "abc", 0, ""},
		{"multibyte", "ääääää", 3, "ää…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.width))
		})
	}
}
