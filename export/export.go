// Package export writes grid rows as CSV.
//
// Every field is double-quoted and embedded quotes are doubled. Lines are
// joined with a newline and there is no trailing newline.
package export

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	nt "datagrid/entity"
)

const (
	// DefaultName is the filename used when the caller supplies none.
	DefaultName = "export.csv"
	// MimeType of the exported file.
	MimeType = "text/csv"

	fileMode = 0o644
)

// ErrNoRows is returned by File when there is nothing to export.
var ErrNoRows = errors.New("no rows to export")

// Quote wraps a field in double quotes, doubling any quotes inside.
func Quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// String renders rows as CSV with a header of column labels.
// It returns an empty string when there are no rows.
func String[T any](rows []T, columns []nt.Column, field func(T, string) nt.Value) string {

	if len(rows) == 0 {
		return ""
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, line(columns, func(col nt.Column) string {
		return col.Title()
	}))

	for _, row := range rows {
		lines = append(lines, line(columns, func(col nt.Column) string {
			return field(row, col.Key).String()
		}))
	}

	return strings.Join(lines, "\n")
}

// Write renders rows to w, writing nothing when there are no rows.
func Write[T any](w io.Writer, rows []T, columns []nt.Column, field func(T, string) nt.Value) (err error) {

	csv := String(rows, columns, field)
	if csv == "" {
		return
	}

	_, err = io.WriteString(w, csv)
	err = errors.Wrapf(err, "failed to write csv")
	return
}

// File writes rows to name under dir and returns the path written.
// No file is created when there are no rows.
func File[T any](dir, name string, rows []T, columns []nt.Column, field func(T, string) nt.Value) (path string, err error) {

	if len(rows) == 0 {
		err = ErrNoRows
		return
	}

	if name == "" {
		name = DefaultName
	}
	path = filepath.Join(dir, name)

	err = os.WriteFile(path, []byte(String(rows, columns, field)), fileMode)
	err = errors.Wrapf(err, "failed to write to %s", path)
	return
}

// unexported

func line(columns []nt.Column, cell func(nt.Column) string) string {
	fields := make([]string, len(columns))
	for i, col := range columns {
		fields[i] = Quote(cell(col))
	}
	return strings.Join(fields, ",")
}
