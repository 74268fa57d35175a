// Package memo is an in-memory key-value store for column preferences.
package memo

import (
	"slices"
	"sync"

	"datagrid/visibility"
)

// Memo holds records in a map.
type Memo struct {
	mu      sync.Mutex
	records map[string][]byte
}

// New creates an empty Memo.
func New() *Memo {
	return &Memo{records: map[string][]byte{}}
}

// Get returns the record for id.
func (mm *Memo) Get(id string) (data []byte, err error) {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	data, ok := mm.records[id]
	if !ok {
		err = visibility.ErrNotFound
		return
	}
	data = slices.Clone(data)
	return
}

// Set replaces the record for id.
func (mm *Memo) Set(id string, data []byte) (err error) {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	mm.records[id] = slices.Clone(data)
	return
}

// Clear removes the record for id.
func (mm *Memo) Clear(id string) (err error) {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	delete(mm.records, id)
	return
}
