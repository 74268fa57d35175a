package grid

import (
	nt "datagrid/entity"
	"datagrid/pager"
	"datagrid/selection"
	"datagrid/sorter"
)

// Event is a user interaction with the grid.
type Event interface {
	isEvent()
}

func (HeaderClick) isEvent()  {}
func (ToggleRow) isEvent()    {}
func (ToggleAll) isEvent()    {}
func (ClearAll) isEvent()     {}
func (GoPage) isEvent()       {}
func (SetPerPage) isEvent()   {}
func (ToggleColumn) isEvent() {}
func (ResetColumns) isEvent() {}

// HeaderClick is a click on a column heading.
type HeaderClick struct{ Key string }

// ToggleRow is a click on a row checkbox.
type ToggleRow struct{ ID string }

// ToggleAll is a click on the select-all checkbox.
type ToggleAll struct{}

// ClearAll asks to deselect every row, on any page.
type ClearAll struct{}

// GoPage is a click on a pager item.
type GoPage struct{ Page int }

// SetPerPage is a choice of page size.
type SetPerPage struct{ PerPage int }

// ToggleColumn is a click in the column chooser.
type ToggleColumn struct{ Key string }

// ResetColumns asks to forget the column preference.
type ResetColumns struct{}

// Intent is a change the grid asks its owner to make.
type Intent interface {
	isIntent()
}

func (PageChange) isIntent()      {}
func (PerPageChange) isIntent()   {}
func (SortChange) isIntent()      {}
func (SelectionChange) isIntent() {}
func (VisibleChange) isIntent()   {}

// PageChange asks for another page.
type PageChange struct{ Page int }

// PerPageChange asks for another page size; owners usually return to page 1.
type PerPageChange struct{ PerPage int }

// SortChange carries the next sort.
type SortChange struct{ Sort nt.Sort }

// SelectionChange carries the next selection.
type SelectionChange struct{ Selected selection.Set }

// VisibleChange asks the owner to toggle or reset a column's visibility.
type VisibleChange struct {
	Key   string
	Reset bool
}

// Dispatch maps an event to the intents it produces under props.
// Events that change nothing produce no intents.
func Dispatch[T any](props Props[T], event Event) []Intent {

	switch ev := event.(type) {
	case HeaderClick:
		col, ok := props.column(ev.Key)
		if !ok || !col.Sortable {
			return nil
		}
		return []Intent{SortChange{Sort: sorter.OnHeaderClick(ev.Key, props.Sort)}}

	case ToggleRow:
		if !props.Selectable {
			return nil
		}
		return []Intent{SelectionChange{Selected: selection.Toggle(ev.ID, props.Selected)}}

	case ToggleAll:
		if !props.Selectable || len(props.Rows) == 0 {
			return nil
		}
		return []Intent{SelectionChange{Selected: selection.SelectAllOnPage(props.PageIDs(), props.Selected)}}

	case ClearAll:
		if !props.Selectable || props.Selected.Len() == 0 {
			return nil
		}
		return []Intent{SelectionChange{Selected: selection.Clear()}}

	case GoPage:
		state := pager.State{Page: props.Page, PerPage: props.PerPage, Total: props.Total}
		if ev.Page < 1 || ev.Page > state.TotalPages() || ev.Page == props.Page {
			return nil
		}
		return []Intent{PageChange{Page: ev.Page}}

	case SetPerPage:
		if ev.PerPage <= 0 || ev.PerPage == props.PerPage {
			return nil
		}
		return []Intent{PerPageChange{PerPage: ev.PerPage}}

	case ToggleColumn:
		col, ok := props.column(ev.Key)
		if !ok || col.Hidden {
			return nil
		}
		return []Intent{VisibleChange{Key: ev.Key}}

	case ResetColumns:
		return []Intent{VisibleChange{Reset: true}}
	}

	return nil
}

// Emit invokes the callbacks in props matching each intent.
// Intents without a callback are dropped.
func Emit[T any](props Props[T], intents []Intent) {

	for _, intent := range intents {
		switch it := intent.(type) {
		case PageChange:
			if props.OnPageChange != nil {
				props.OnPageChange(it.Page)
			}
		case PerPageChange:
			if props.OnPerPageChange != nil {
				props.OnPerPageChange(it.PerPage)
			}
		case SortChange:
			if props.OnSort != nil {
				props.OnSort(it.Sort)
			}
		case SelectionChange:
			if props.OnSelectionChange != nil {
				props.OnSelectionChange(it.Selected)
			}
		case VisibleChange:
			if props.OnVisibleChange != nil {
				props.OnVisibleChange(it.Key, it.Reset)
			}
		}
	}
}
