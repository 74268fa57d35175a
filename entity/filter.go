package entity

// FilterOp represents a filter operation type.
type FilterOp int

const (
	// Logical operators
	And FilterOp = iota
	Or
	Not

	// Comparison operators
	Eq       // ==
	Ne       // !=
	Contains // case-insensitive substring
	Gte      // >= numerically
)

// Filter narrows the records an owner fetches for the grid.
// Filters can be simple comparisons or logical combinations.
type Filter struct {
	Op       FilterOp
	Field    string
	Value    any
	Children []Filter
}

// Empty is true when the filter constrains nothing.
func (f Filter) Empty() bool {
	return f.Field == "" && len(f.Children) == 0
}
