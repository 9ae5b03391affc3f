package uptime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCursor_Empty(t *testing.T) {
	c, err := DecodeCursor("")
	require.NoError(t, err)
	assert.Equal(t, CursorAfter, c.CursorDirection)
	assert.Equal(t, SortAsc, c.SortOrder)
	assert.Empty(t, c.CursorKey)
}

func TestEncodeDecodeCursor(t *testing.T) {
	token := EncodeCursor(CursorPagination{CursorKey: "monitor-b", CursorDirection: CursorBefore})
	assert.Contains(t, token, `"cursorKey":"monitor-b"`)
	assert.Contains(t, token, `"sortOrder":"ASC"`)

	c, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.Equal(t, "monitor-b", c.CursorKey)
	assert.Equal(t, CursorBefore, c.CursorDirection)
}

func TestDecodeCursor_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "not json", token: "page-2"},
		{name: "bad direction", token: `{"cursorKey":"a","cursorDirection":"SIDEWAYS"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCursor(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestDecodeCursor_DefaultsDirection(t *testing.T) {
	c, err := DecodeCursor(`{"cursorKey":"a"}`)
	require.NoError(t, err)
	assert.Equal(t, CursorAfter, c.CursorDirection)
}
