package monitor

import (
	"slices"

	"github.com/rileyhilliard/upmon/internal/uptime"
)

// DrawerIDs is the ordered set of monitor ids whose drawers are open.
// The zero value is an empty set.
type DrawerIDs struct {
	ids []string
}

// Toggle adds id when absent and removes it when present.
func (d *DrawerIDs) Toggle(id string) {
	if i := slices.Index(d.ids, id); i >= 0 {
		d.ids = slices.Delete(d.ids, i, i+1)
		return
	}
	d.ids = append(d.ids, id)
}

// Contains reports whether id's drawer is open.
func (d DrawerIDs) Contains(id string) bool {
	return slices.Contains(d.ids, id)
}

// IDs returns a copy of the open ids in toggle order.
func (d DrawerIDs) IDs() []string {
	return slices.Clone(d.ids)
}

// Len returns the number of open drawers.
func (d DrawerIDs) Len() int { return len(d.ids) }

// BuildExpandedRowMap renders a drawer for every open id that matches a
// summary on the current page. Ids with no match produce no entry.
func BuildExpandedRowMap(ids DrawerIDs, items []uptime.MonitorSummary, drawer func(uptime.MonitorSummary) string) ExpandedRowMap {
	out := make(ExpandedRowMap, ids.Len())
	for _, id := range ids.ids {
		i := slices.IndexFunc(items, func(s uptime.MonitorSummary) bool { return s.MonitorID == id })
		if i < 0 {
			continue
		}
		out[id] = drawer(items[i])
	}
	return out
}
