// Package selection tracks multi-select state across pages.
//
// Sets are immutable: every operation returns a new Set and leaves its
// argument untouched, so owners can hold and compare them safely.
package selection

import (
	"maps"
	"slices"
)

// Set is a set of row ids.
type Set struct {
	ids map[string]struct{}
}

// New returns a set holding ids.
func New(ids ...string) Set {
	set := Set{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		set.ids[id] = struct{}{}
	}
	return set
}

// Clear returns the empty set.
func Clear() Set {
	return Set{}
}

// Has reports whether id is selected.
func (set Set) Has(id string) bool {
	_, ok := set.ids[id]
	return ok
}

// Len is the number of selected ids.
func (set Set) Len() int {
	return len(set.ids)
}

// IDs returns the selected ids, sorted.
func (set Set) IDs() []string {
	return slices.Sorted(maps.Keys(set.ids))
}

// Equal reports whether both sets hold the same ids.
func (set Set) Equal(other Set) bool {
	if set.Len() != other.Len() {
		return false
	}
	for id := range set.ids {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

func (set Set) clone() Set {
	ids := make(map[string]struct{}, len(set.ids)+1)
	maps.Copy(ids, set.ids)
	return Set{ids: ids}
}

// Toggle adds id when absent and removes it when present.
func Toggle(id string, cur Set) Set {

	next := cur.clone()
	if cur.Has(id) {
		delete(next.ids, id)
	} else {
		next.ids[id] = struct{}{}
	}
	return next
}

// SelectAllOnPage adds every id on the page, or, when all of them are already
// selected, removes exactly those ids. Selections on other pages are kept.
func SelectAllOnPage(pageIDs []string, cur Set) Set {

	if len(pageIDs) == 0 {
		return cur
	}

	all := AllSelected(pageIDs, cur)

	next := cur.clone()
	for _, id := range pageIDs {
		if all {
			delete(next.ids, id)
		} else {
			next.ids[id] = struct{}{}
		}
	}
	return next
}

// AllSelected is true when every page id is selected (vacuously so for none).
func AllSelected(pageIDs []string, cur Set) bool {
	for _, id := range pageIDs {
		if !cur.Has(id) {
			return false
		}
	}
	return true
}

// SomeSelected is true when anything is selected but not the whole page.
func SomeSelected(pageIDs []string, cur Set) bool {
	return cur.Len() > 0 && !AllSelected(pageIDs, cur)
}

// Check is the state of a tri-state header checkbox.
type Check int

const (
	Unchecked Check = iota
	Indeterminate
	Checked
)

// HeaderState derives the select-all checkbox state for a page.
func HeaderState(pageIDs []string, cur Set) Check {

	switch {
	case len(pageIDs) > 0 && AllSelected(pageIDs, cur):
		return Checked
	case SomeSelected(pageIDs, cur):
		return Indeterminate
	}
	return Unchecked
}

// Prune drops ids for which keep returns false.
// Nothing prunes automatically; owners call this after a refresh if they want it.
func Prune(keep func(id string) bool, cur Set) Set {

	next := Set{ids: map[string]struct{}{}}
	for id := range cur.ids {
		if keep(id) {
			next.ids[id] = struct{}{}
		}
	}
	return next
}
