package datagrid

import (
	"github.com/pkg/errors"

	tea "charm.land/bubbletea/v2"

	nt "datagrid/entity"
	"datagrid/export"
	"datagrid/message"
)

// getPage gets the current page of records from the source
func (m Model) getPage() tea.Cmd {

	source := m.source
	filter := m.filter
	sort := m.sort
	state := m.pagination()

	return func() tea.Msg {

		count, err := source.Count(filter)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		records, err := source.GetPage(filter, sort, state.Offset(), state.PerPage)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}

		return message.PageMsg{
			Records: records,
			Total:   count,
			Page:    state.Page,
			PerPage: state.PerPage,
			Sort:    sort,
		}
	}
}

// export writes selected records on the page, or the whole page when none are, to csv
func (m Model) export() tea.Cmd {

	records := exportable(m.records, m.selected.Has)
	columns := m.props().VisibleColumns()
	dir := m.exportDir

	return func() tea.Msg {

		path, err := export.File(dir, export.DefaultName, records, columns, nt.Record.Field)
		if err != nil {
			return message.ErrorMsg{Err: errors.Wrapf(err, "failed to export %d records", len(records))}
		}

		return message.ExportedMsg{Path: path, Count: len(records)}
	}
}

func exportable(records []nt.Record, selected func(string) bool) []nt.Record {

	chosen := []nt.Record{}
	for _, rec := range records {
		if selected(RowKey(rec)) {
			chosen = append(chosen, rec)
		}
	}

	if len(chosen) == 0 {
		return records
	}
	return chosen
}
