package monitor

import "strings"

// PageDirection is which way a pager control moves.
type PageDirection string

const (
	PagePrev PageDirection = "prev"
	PageNext PageDirection = "next"
)

// PagerControl is one paging link. An empty Token means there is no page
// in that direction and the control is disabled.
type PagerControl struct {
	Direction PageDirection
	Token     string
}

// Enabled reports whether the control leads anywhere.
func (c PagerControl) Enabled() bool { return c.Token != "" }

// Key is the shortcut that follows this control.
func (c PagerControl) Key() string {
	if c.Direction == PageNext {
		return KeyNextPage
	}
	return KeyPrevPage
}

func (c PagerControl) text() string {
	if c.Direction == PageNext {
		return "Next ›"
	}
	return "‹ Prev"
}

// View renders the control, dimmed when disabled.
func (c PagerControl) View() string {
	if !c.Enabled() {
		return PagerDisabledStyle.Render(c.text())
	}
	return PagerEnabledStyle.Render(c.text()) + MutedStyle.Render(" ("+c.Key()+")")
}

// renderPager lays out the prev and next controls.
func renderPager(prev, next PagerControl) string {
	return strings.Join([]string{prev.View(), next.View()}, "   ")
}
