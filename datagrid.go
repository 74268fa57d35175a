// Package datagrid is a terminal browser for paged records built on the grid
// package: it owns the data, feeds the grid props, and applies its intents.
package datagrid

import (
	nt "datagrid/entity"
)

// Source specifies a backing record store.
type Source interface {
	// Name returns the name of the data source
	Name() string
	// Fields returns the record field names
	Fields() []string
	// Count records passing the filter
	Count(filter nt.Filter) (count int, err error)
	// GetPage of records passing the filter, sorted
	GetPage(filter nt.Filter, sort nt.Sort, offset, size int) (records []nt.Record, err error)
}

// RowKey is the id of a record.
func RowKey(rec nt.Record) string {
	return rec.Field("id").String()
}

// Search returns a filter matching term in any of fields, or no filter for an empty term.
func Search(term string, fields []string) nt.Filter {

	if term == "" {
		return nt.Filter{}
	}

	filter := nt.Filter{Op: nt.Or}
	for _, field := range fields {
		filter.Children = append(filter.Children, nt.Filter{
			Op:    nt.Contains,
			Field: field,
			Value: term,
		})
	}
	return filter
}
