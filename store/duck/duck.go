// Package duck loads records into DuckDB for paging, and keeps column
// preferences in a DuckDB table.
package duck

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"

	nt "datagrid/entity"
	"datagrid/sorter"
	"datagrid/visibility"
)

const (
	recordTable = "records"
	prefsTable  = "column_prefs"
	idField     = "id"
)

// Duck is a DuckDB backed record source and column preference store.
type Duck struct {
	db       *sql.DB
	logger   nt.Logger
	fields   []string
	filename string
}

// New opens duck at dsn; an empty dsn is in-memory.
func New(dsn string, lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		err = errors.Wrapf(err, "failed to open duck at %q", dsn)
		return
	}

	dk = &Duck{
		db:     db,
		logger: lgr,
	}

	err = dk.createPrefs()
	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Name returns the name of the loaded file
func (dk *Duck) Name() string {
	return filepath.Base(dk.filename)
}

// Load a csv or newline-delimited json file, replacing any loaded records.
// Records without an id column are numbered in file order.
func (dk *Duck) Load(path string) (err error) {

	source := readerFor(path)

	cols, err := dk.sourceColumns(source)
	if err != nil {
		return
	}

	selection := "*"
	if !slices.Contains(cols, idField) {
		selection = fmt.Sprintf("ROW_NUMBER() OVER () AS %s, *", idField)
	}

	_, err = dk.db.Exec(fmt.Sprintf(
		"CREATE OR REPLACE TABLE %s AS SELECT %s FROM %s",
		recordTable, selection, source))
	if err != nil {
		err = errors.Wrapf(err, "failed to load %s", path)
		return
	}

	dk.fields, err = dk.getFields()
	if err != nil {
		return
	}

	dk.filename = path
	return
}

// Fields returns the loaded column names in table order.
func (dk *Duck) Fields() []string {
	return slices.Clone(dk.fields)
}

// Count returns the number of records passing the filter.
func (dk *Duck) Count(filter nt.Filter) (count int, err error) {

	where, args := dk.buildWhereClause(filter)
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", recordTable, where)

	err = dk.db.QueryRow(query, args...).Scan(&count)
	err = errors.Wrapf(err, "failed to count records")
	return
}

// GetPage of records passing filter, in sort order then by id.
// Sorts on unknown fields are ignored.
func (dk *Duck) GetPage(filter nt.Filter, sort nt.Sort, offset, size int) (records []nt.Record, err error) {

	where, args := dk.buildWhereClause(filter)
	order := sorter.OrderBy(sort, dk.fields)
	if order == "" {
		order = fmt.Sprintf("ORDER BY %q", idField)
	} else {
		order += fmt.Sprintf(", %q", idField)
	}

	query := fmt.Sprintf("SELECT * FROM %s %s %s LIMIT %d OFFSET %d",
		recordTable, where, order, size, offset)

	rows, err := dk.db.Query(query, args...)
	if err != nil {
		err = errors.Wrapf(err, "failed to query records")
		return
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		err = errors.Wrapf(err, "failed to get cols from query rows")
		return
	}

	for rows.Next() {
		var vals []any
		vals, err = scanRow(rows, len(cols))
		if err != nil {
			err = errors.Wrapf(err, "failed to scan row")
			return
		}

		record := make(nt.Record, len(cols))
		for i, val := range vals {
			record[cols[i]] = nt.Value{Raw: val}
		}
		records = append(records, record)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

// Get returns the column preference record for a table.
func (dk *Duck) Get(id string) (data []byte, err error) {

	query := fmt.Sprintf("SELECT visible FROM %s WHERE table_id = ?", prefsTable)

	var visible string
	err = dk.db.QueryRow(query, id).Scan(&visible)
	if errors.Is(err, sql.ErrNoRows) {
		err = visibility.ErrNotFound
		return
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to query column prefs")
		return
	}

	data = []byte(visible)
	return
}

// Set replaces the column preference record for a table.
func (dk *Duck) Set(id string, data []byte) (err error) {

	_, err = dk.db.Exec(fmt.Sprintf(
		"INSERT OR REPLACE INTO %s (table_id, visible) VALUES (?, ?)",
		prefsTable), id, string(data))
	err = errors.Wrapf(err, "failed to write column prefs")
	return
}

// Clear removes the column preference record for a table.
func (dk *Duck) Clear(id string) (err error) {

	_, err = dk.db.Exec(fmt.Sprintf(
		"DELETE FROM %s WHERE table_id = ?", prefsTable), id)
	err = errors.Wrapf(err, "failed to clear column prefs")
	return
}

// unexported

func (dk *Duck) createPrefs() (err error) {

	_, err = dk.db.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			table_id VARCHAR PRIMARY KEY,
			visible  VARCHAR NOT NULL
		)
	`, prefsTable))
	err = errors.Wrapf(err, "failed to create column prefs table")
	return
}

func (dk *Duck) sourceColumns(source string) (cols []string, err error) {

	rows, err := dk.db.Query(fmt.Sprintf("SELECT * FROM %s LIMIT 0", source))
	if err != nil {
		err = errors.Wrapf(err, "failed to read %s", source)
		return
	}
	defer rows.Close()

	cols, err = rows.Columns()
	err = errors.Wrapf(err, "failed to get cols from %s", source)
	return
}

func readerFor(path string) string {

	reader := "read_csv_auto"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".ndjson", ".jsonl":
		reader = "read_json_auto"
	}

	quoted := strings.ReplaceAll(path, "'", "''")
	return fmt.Sprintf("%s('%s')", reader, quoted)
}

// buildWhereClause converts the filter to a WHERE clause and its args
func (dk *Duck) buildWhereClause(filter nt.Filter) (string, []any) {

	clause, args := dk.buildFilterExpr(filter)
	if clause == "" {
		return "", nil
	}
	return "WHERE " + clause, args
}

// buildFilterExpr recursively builds a filter expression (without WHERE prefix)
// Comparisons on unknown fields are dropped.
func (dk *Duck) buildFilterExpr(f nt.Filter) (string, []any) {

	switch f.Op {
	case nt.Eq, nt.Ne, nt.Contains, nt.Gte:
		if !slices.Contains(dk.fields, f.Field) {
			return "", nil
		}
		switch f.Op {
		case nt.Eq:
			return fmt.Sprintf("CAST(%q AS VARCHAR) = ?", f.Field), []any{fmt.Sprint(f.Value)}
		case nt.Ne:
			return fmt.Sprintf("CAST(%q AS VARCHAR) != ?", f.Field), []any{fmt.Sprint(f.Value)}
		case nt.Gte:
			return fmt.Sprintf("TRY_CAST(%q AS DOUBLE) >= ?", f.Field), []any{f.Value}
		}
		return fmt.Sprintf("CAST(%q AS VARCHAR) ILIKE ?", f.Field), []any{"%" + fmt.Sprint(f.Value) + "%"}

	case nt.And, nt.Or:
		joiner := " AND "
		if f.Op == nt.Or {
			joiner = " OR "
		}

		var clauses []string
		var args []any
		for _, child := range f.Children {
			expr, childArgs := dk.buildFilterExpr(child)
			if expr != "" {
				clauses = append(clauses, expr)
				args = append(args, childArgs...)
			}
		}
		if len(clauses) == 0 {
			return "", nil
		}
		return "(" + strings.Join(clauses, joiner) + ")", args

	case nt.Not:
		if len(f.Children) > 0 {
			expr, args := dk.buildFilterExpr(f.Children[0])
			if expr != "" {
				return "NOT (" + expr + ")", args
			}
		}
	}

	return "", nil
}

func (dk *Duck) getFields() (fields []string, err error) {

	rows, err := dk.db.Query(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = ?
		ORDER BY ordinal_position
	`, recordTable)
	if err != nil {
		err = errors.Wrapf(err, "failed to query schema")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			err = errors.Wrapf(err, "failed to scan field")
			return
		}
		fields = append(fields, name)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating schema")
	return
}

func scanRow(rows *sql.Rows, columnCount int) ([]any, error) {
	vals := make([]any, columnCount)
	ptrs := make([]any, columnCount)
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	err := rows.Scan(ptrs...)
	return vals, err
}
