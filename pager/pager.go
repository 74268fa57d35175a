// Package pager computes page windows and bounds for a paginated grid.
package pager

const (
	// fullWindow is the largest page count shown without ellipses.
	fullWindow = 7
	// DefaultPerPage matches the leads listing default.
	DefaultPerPage = 50
)

// PerPageOptions are the page sizes offered to users.
var PerPageOptions = []int{10, 25, 50, 100}

// Item is one entry in a page window: a page number, or an ellipsis when Page is 0.
type Item struct {
	Page int
}

// IsEllipsis is true for a gap marker.
func (item Item) IsEllipsis() bool {
	return item.Page == 0
}

// Ellipsis marks a gap between rendered pages.
var Ellipsis = Item{}

// Window returns the pages and gaps to show for the current page.
func Window(page, totalPages int) []Item {

	if totalPages <= 0 {
		return nil
	}

	if totalPages <= fullWindow {
		items := make([]Item, totalPages)
		for i := range items {
			items[i] = Item{Page: i + 1}
		}
		return items
	}

	items := []Item{{Page: 1}}
	if page > 3 {
		items = append(items, Ellipsis)
	}

	lo, hi := max(2, page-1), min(totalPages-1, page+1)
	if page <= 2 {
		hi = min(totalPages-1, 3)
	}
	if page >= totalPages-1 {
		lo = max(2, totalPages-2)
	}

	for pg := lo; pg <= hi; pg++ {
		items = append(items, Item{Page: pg})
	}

	if page < totalPages-2 {
		items = append(items, Ellipsis)
	}

	return append(items, Item{Page: totalPages})
}

// State is the pagination of a grid.
type State struct {
	Page    int
	PerPage int
	Total   int
}

// TotalPages is ceil(Total/PerPage), zero when there is nothing to show.
func (st State) TotalPages() int {
	if st.Total <= 0 || st.PerPage <= 0 {
		return 0
	}
	return (st.Total + st.PerPage - 1) / st.PerPage
}

// Valid reports whether Page is within 1..max(TotalPages, 1).
func (st State) Valid() bool {
	return st.PerPage > 0 && st.Page >= 1 && st.Page <= max(st.TotalPages(), 1)
}

// Clamp returns page forced into range.
func (st State) Clamp(page int) int {
	return min(max(page, 1), max(st.TotalPages(), 1))
}

// Offset is the index of the first record on Page.
func (st State) Offset() int {
	if st.Page < 1 {
		return 0
	}
	return (st.Page - 1) * st.PerPage
}

// Next returns the following page, clamped.
func (st State) Next() int {
	return st.Clamp(st.Page + 1)
}

// Prev returns the preceding page, clamped.
func (st State) Prev() int {
	return st.Clamp(st.Page - 1)
}

// CyclePerPage returns the option after current, wrapping around.
// An unlisted current value yields the first option.
func CyclePerPage(current int, step int) int {

	for i, opt := range PerPageOptions {
		if opt == current {
			n := len(PerPageOptions)
			return PerPageOptions[((i+step)%n+n)%n]
		}
	}
	return PerPageOptions[0]
}
