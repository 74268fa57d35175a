// Package sorter applies header clicks to a grid's sort.
package sorter

import (
	"fmt"
	"slices"

	nt "datagrid/entity"
)

// OnHeaderClick flips direction when key is already active, otherwise sorts
// ascending by key. Callers reject non-sortable columns beforehand.
func OnHeaderClick(key string, cur nt.Sort) nt.Sort {

	if key == cur.Key {
		return nt.Sort{Key: key, Direction: cur.Direction.Flip()}
	}
	return nt.Sort{Key: key, Direction: nt.Asc}
}

// Indicator is the header affordance for a column under the current sort.
func Indicator(col nt.Column, cur nt.Sort) string {

	switch {
	case !col.Sortable:
		return ""
	case col.Key != cur.Key:
		return "↕"
	case cur.Direction == nt.Desc:
		return "▼"
	}
	return "▲"
}

// OrderBy renders an ORDER BY clause for sort, restricted to allowed keys.
// Unknown keys or an inactive sort yield an empty clause.
func OrderBy(cur nt.Sort, allowed []string) string {

	if !cur.Active() || !slices.Contains(allowed, cur.Key) {
		return ""
	}

	dir := "ASC"
	if cur.Direction == nt.Desc {
		dir = "DESC"
	}
	return fmt.Sprintf("ORDER BY %q %s", cur.Key, dir)
}
