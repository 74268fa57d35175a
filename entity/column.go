package entity

import (
	"github.com/pkg/errors"
)

// Column describes one field of a grid.
type Column struct {
	Key      string `yaml:"key"`
	Label    string `yaml:"label"`
	Sortable bool   `yaml:"sortable,omitempty"`
	Hidden   bool   `yaml:"hidden,omitempty"`
	Width    int    `yaml:"width,omitempty"`
	Render   Render `yaml:"render,omitempty"`
}

// Title returns the label, or key when unlabeled.
func (col Column) Title() string {
	if col.Label == "" {
		return col.Key
	}
	return col.Label
}

// Keys returns column keys in declared order.
func Keys(columns []Column) []string {
	keys := make([]string, len(columns))
	for i, col := range columns {
		keys[i] = col.Key
	}
	return keys
}

// ValidateColumns checks that keys are present and unique.
func ValidateColumns(columns []Column) (err error) {

	seen := map[string]bool{}
	for i, col := range columns {
		if col.Key == "" {
			err = errors.Errorf("column %d has no key", i)
			return
		}
		if seen[col.Key] {
			err = errors.Errorf("duplicate column key %q", col.Key)
			return
		}
		seen[col.Key] = true
	}
	return
}
