package message

import nt "datagrid/entity"

// PageMsg contains a fetched page of records and the request it answers
type PageMsg struct {
	Records []nt.Record
	Total   int
	Page    int
	PerPage int
	Sort    nt.Sort
}

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}

// ExportedMsg reports a finished csv export
type ExportedMsg struct {
	Path  string
	Count int
}

// FetchMsg signals the owner to (re)load the current page
type FetchMsg struct{}
