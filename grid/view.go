package grid

import (
	nt "datagrid/entity"
	"datagrid/pager"
	"datagrid/selection"
	"datagrid/sorter"
)

// Mode is which body the grid shows.
type Mode int

const (
	ModeRows Mode = iota
	ModeLoading
	ModeEmpty
)

// Header is one column heading.
type Header struct {
	Key       string
	Label     string
	Sortable  bool
	Indicator string
	Width     int
}

// Row is one rendered body row.
type Row struct {
	ID      string
	Checked bool
	Cells   []string
}

// Pager is the pagination control.
type Pager struct {
	Page       int
	TotalPages int
	PerPage    int
	Items      []pager.Item
}

// View describes a rendered grid.
type View struct {
	Mode       Mode
	Selectable bool
	SelectAll  selection.Check
	Headers    []Header
	Rows       []Row
	Skeleton   int // placeholder cells while loading
	Empty      Empty
	Pager      *Pager // nil when there is one page or none
	Selected   int
	Total      int
}

// Build renders props into a View.
func Build[T any](props Props[T]) View {

	columns := props.VisibleColumns()

	view := View{
		Selectable: props.Selectable,
		Headers:    headers(columns, props.Sort),
		Selected:   props.Selected.Len(),
		Total:      props.Total,
	}

	switch {
	case props.Loading:
		view.Mode = ModeLoading
		view.Skeleton = props.skeletonRows() * len(columns)
		return view

	case len(props.Rows) == 0:
		view.Mode = ModeEmpty
		view.Empty = props.Empty
		if view.Empty.Title == "" {
			view.Empty.Title = "No results"
		}
		return view
	}

	view.Mode = ModeRows
	if props.Selectable {
		view.SelectAll = selection.HeaderState(props.PageIDs(), props.Selected)
	}

	view.Rows = make([]Row, len(props.Rows))
	for i, row := range props.Rows {
		id := props.RowKey(row)
		cells := make([]string, len(columns))
		for j, col := range columns {
			cells[j] = col.Render.Apply(props.Field(row, col.Key))
		}
		view.Rows[i] = Row{
			ID:      id,
			Checked: props.Selectable && props.Selected.Has(id),
			Cells:   cells,
		}
	}

	state := pager.State{Page: props.Page, PerPage: props.PerPage, Total: props.Total}
	if total := state.TotalPages(); total > 1 {
		view.Pager = &Pager{
			Page:       props.Page,
			TotalPages: total,
			PerPage:    props.PerPage,
			Items:      pager.Window(props.Page, total),
		}
	}

	return view
}

// unexported

func headers(columns []nt.Column, srt nt.Sort) []Header {
	hdrs := make([]Header, len(columns))
	for i, col := range columns {
		hdrs[i] = Header{
			Key:       col.Key,
			Label:     col.Title(),
			Sortable:  col.Sortable,
			Indicator: sorter.Indicator(col, srt),
			Width:     col.Width,
		}
	}
	return hdrs
}
