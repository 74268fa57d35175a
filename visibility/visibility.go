// Package visibility keeps per-table column visibility in a durable key-value store.
//
// Each table's record is a JSON array of visible column keys stored under the
// table's id. Missing or unreadable records are treated as "no preference" and
// never reported to the user; store failures are only logged.
package visibility

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/pkg/errors"

	nt "datagrid/entity"
)

// ErrNotFound is returned by a Store when no record exists for an id.
var ErrNotFound = errors.New("no column preference stored")

// Store specifies a durable key-value store for column preferences.
type Store interface {
	// Get returns the record for id, or ErrNotFound
	Get(id string) (data []byte, err error)
	// Set replaces the record for id
	Set(id string, data []byte) (err error)
	// Clear removes the record for id, if any
	Clear(id string) (err error)
}

// Set is an ordered set of visible column keys.
type Set struct {
	keys []string
}

// NewSet returns a set of keys, dropping duplicates.
func NewSet(keys ...string) Set {
	set := Set{}
	for _, key := range keys {
		if !set.Has(key) {
			set.keys = append(set.keys, key)
		}
	}
	return set
}

// Has reports whether key is visible.
func (set Set) Has(key string) bool {
	return slices.Contains(set.keys, key)
}

// Len is the number of visible keys.
func (set Set) Len() int {
	return len(set.keys)
}

// Keys returns the visible keys.
func (set Set) Keys() []string {
	return slices.Clone(set.keys)
}

// Filter returns the visible columns in declared order.
func (set Set) Filter(columns []nt.Column) []nt.Column {
	visible := []nt.Column{}
	for _, col := range columns {
		if set.Has(col.Key) {
			visible = append(visible, col)
		}
	}
	return visible
}

// Defaults is every offerable column: all declared columns except those marked Hidden.
func Defaults(columns []nt.Column) Set {
	set := Set{}
	for _, col := range columns {
		if !col.Hidden {
			set.keys = append(set.keys, col.Key)
		}
	}
	return set
}

// Columns hydrates, toggles, and persists visible column sets.
type Columns struct {
	store  Store
	ctx    context.Context
	logger nt.Logger
}

// New creates a Columns over store.
func New(ctx context.Context, store Store, lgr nt.Logger) *Columns {
	return &Columns{
		store:  store,
		ctx:    ctx,
		logger: lgr,
	}
}

// Hydrate returns the stored set for a table, or defaults when there is no
// usable record.
func (cols *Columns) Hydrate(tableID string, columns []nt.Column) Set {

	defaults := Defaults(columns)

	data, err := cols.store.Get(tableID)
	if errors.Is(err, ErrNotFound) {
		return defaults
	}
	if err != nil {
		cols.logger.Error(cols.ctx, "failed to read column preference", err, "table_id", tableID)
		return defaults
	}

	var keys []string
	err = json.Unmarshal(data, &keys)
	if err != nil {
		cols.logger.Info(cols.ctx, "ignoring corrupt column preference", "table_id", tableID, "error", err.Error())
		return defaults
	}

	stored := NewSet(keys...)

	set := Set{}
	for _, key := range defaults.keys {
		if stored.Has(key) {
			set.keys = append(set.keys, key)
		}
	}

	if set.Len() == 0 {
		return defaults
	}
	return set
}

// Persist writes the set for a table.
func (cols *Columns) Persist(tableID string, set Set) {

	data, err := json.Marshal(set.Keys())
	if err != nil {
		cols.logger.Error(cols.ctx, "failed to encode column preference", err, "table_id", tableID)
		return
	}

	err = cols.store.Set(tableID, data)
	if err != nil {
		cols.logger.Error(cols.ctx, "failed to write column preference", err, "table_id", tableID)
	}
}

// Toggle hides a visible column or shows a hidden one and persists the result.
// Hiding the last visible column, or toggling an unknown key, changes nothing.
func (cols *Columns) Toggle(tableID, key string, columns []nt.Column, cur Set) Set {

	defaults := Defaults(columns)
	if !defaults.Has(key) {
		return cur
	}

	var next Set
	switch {
	case cur.Has(key) && cur.Len() == 1:
		return cur
	case cur.Has(key):
		for _, k := range cur.keys {
			if k != key {
				next.keys = append(next.keys, k)
			}
		}
	default:
		// rebuild in declared order
		for _, k := range defaults.keys {
			if k == key || cur.Has(k) {
				next.keys = append(next.keys, k)
			}
		}
	}

	cols.Persist(tableID, next)
	return next
}

// Reset removes the stored preference and returns every offerable column.
func (cols *Columns) Reset(tableID string, columns []nt.Column) Set {

	err := cols.store.Clear(tableID)
	if err != nil {
		cols.logger.Error(cols.ctx, "failed to clear column preference", err, "table_id", tableID)
	}

	return Defaults(columns)
}
