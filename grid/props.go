// Package grid composes pagination, selection, sorting, and column visibility
// into a stateless data grid: Build renders props into a View and Dispatch
// turns user events into intents for the owner.
package grid

import (
	nt "datagrid/entity"
	"datagrid/selection"
	"datagrid/visibility"
)

const defaultSkeletonRows = 5

// Empty describes what to show when there are no rows.
type Empty struct {
	Icon        string
	Title       string
	Description string
	Action      string
}

// Props is everything an owner hands the grid for one render.
// The grid reads Props and never modifies what they reference.
type Props[T any] struct {
	Columns    []nt.Column
	Rows       []T
	Total      int
	Page       int
	PerPage    int
	Loading    bool
	Selectable bool
	Selected   selection.Set
	Sort       nt.Sort

	// RowKey returns a stable id, unique across the whole dataset.
	RowKey func(T) string
	// Field returns the value of a row at a column key.
	Field func(T, string) nt.Value

	// Visible limits the columns shown; nil shows all offerable columns.
	Visible *visibility.Set

	SkeletonRows int
	Empty        Empty

	OnPageChange      func(page int)
	OnPerPageChange   func(perPage int)
	OnSort            func(sort nt.Sort)
	OnSelectionChange func(set selection.Set)
	OnVisibleChange   func(key string, reset bool)
}

// VisibleColumns returns the columns to show, in declared order.
func (props Props[T]) VisibleColumns() []nt.Column {

	if props.Visible == nil {
		return visibility.Defaults(props.Columns).Filter(props.Columns)
	}

	visible := props.Visible.Filter(props.Columns)
	if len(visible) == 0 {
		return visibility.Defaults(props.Columns).Filter(props.Columns)
	}
	return visible
}

// PageIDs returns the ids of the rows on this page.
func (props Props[T]) PageIDs() []string {
	ids := make([]string, len(props.Rows))
	for i, row := range props.Rows {
		ids[i] = props.RowKey(row)
	}
	return ids
}

func (props Props[T]) skeletonRows() int {
	if props.SkeletonRows > 0 {
		return props.SkeletonRows
	}
	return defaultSkeletonRows
}

func (props Props[T]) column(key string) (col nt.Column, ok bool) {
	for _, col = range props.Columns {
		if col.Key == key {
			ok = true
			return
		}
	}
	return
}
