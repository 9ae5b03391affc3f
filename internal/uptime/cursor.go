package uptime

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CursorDirection says which side of the cursor key a page lies on.
type CursorDirection string

const (
	CursorAfter  CursorDirection = "AFTER"
	CursorBefore CursorDirection = "BEFORE"
)

// SortOrder is carried in the cursor for compatibility; only ascending is produced.
type SortOrder string

const SortAsc SortOrder = "ASC"

// CursorPagination is the decoded form of a pagination token.
type CursorPagination struct {
	CursorKey       string          `json:"cursorKey,omitempty"`
	CursorDirection CursorDirection `json:"cursorDirection"`
	SortOrder       SortOrder       `json:"sortOrder"`
}

// EncodeCursor renders a cursor as the opaque token string.
func EncodeCursor(c CursorPagination) string {
	if c.SortOrder == "" {
		c.SortOrder = SortAsc
	}
	data, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return string(data)
}

// DecodeCursor parses a pagination token. An empty token is the first page.
func DecodeCursor(token string) (CursorPagination, error) {
	c := CursorPagination{CursorDirection: CursorAfter, SortOrder: SortAsc}
	if strings.TrimSpace(token) == "" {
		return c, nil
	}
	if err := json.Unmarshal([]byte(token), &c); err != nil {
		return CursorPagination{}, fmt.Errorf("invalid pagination token: %w", err)
	}
	switch c.CursorDirection {
	case CursorAfter, CursorBefore:
	case "":
		c.CursorDirection = CursorAfter
	default:
		return CursorPagination{}, fmt.Errorf("invalid cursor direction %q", c.CursorDirection)
	}
	if c.SortOrder == "" {
		c.SortOrder = SortAsc
	}
	return c, nil
}
