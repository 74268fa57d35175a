// Package detail shows every field of one record, hidden columns included.
package detail

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"

	nt "datagrid/entity"
	"datagrid/style"
)

// Todo: honor width for long values

// Panel handles the full record display state
type Panel struct {
	columns []nt.Column

	record       nt.Record
	contentLines []string

	// Display state
	Height       int
	Open         bool
	ScrollOffset int
}

func New(columns []nt.Column) Panel {
	return Panel{
		columns: columns,
	}
}

// Show opens the panel on rec.
func (pnl Panel) Show(rec nt.Record) Panel {
	pnl.record = rec
	pnl.Open = true
	pnl.ScrollOffset = 0
	pnl.computeContentLines()
	return pnl
}

func (pnl Panel) Update(msg tea.KeyPressMsg) Panel {

	switch msg.String() {
	case "esc", "d", "q":
		pnl.Open = false

	case "up", "k":
		if pnl.ScrollOffset > 0 {
			pnl.ScrollOffset--
		}

	case "down", "j":
		// Only allow scrolling if content exceeds viewport
		if pnl.Height > 0 && len(pnl.contentLines) > pnl.Height {
			maxScroll := len(pnl.contentLines) - pnl.Height
			if pnl.ScrollOffset < maxScroll {
				pnl.ScrollOffset++
			}
		}
	}

	return pnl
}

// View renders the visible portion of the record
func (pnl Panel) View() string {
	if pnl.record == nil {
		return style.MutedStyle.Render("No record")
	}

	visibleLines := pnl.contentLines[pnl.ScrollOffset:]
	if pnl.Height > 0 && len(visibleLines) > pnl.Height {
		visibleLines = visibleLines[:pnl.Height]
	}

	return style.BoxStyle.Render(strings.Join(visibleLines, "\n"))
}

// Lines returns the rendered record, one field per line.
func (pnl Panel) Lines() []string {
	return slices.Clone(pnl.contentLines)
}

// unexported

// computeContentLines renders declared columns first, then any other fields by name
func (pnl *Panel) computeContentLines() {

	width := 0
	seen := map[string]bool{}
	for _, col := range pnl.columns {
		width = max(width, len(col.Title()))
		seen[col.Key] = true
	}

	extra := []string{}
	for key := range pnl.record {
		if !seen[key] {
			extra = append(extra, key)
			width = max(width, len(key))
		}
	}
	slices.Sort(extra)

	lines := []string{}
	for _, col := range pnl.columns {
		label := style.HeaderStyle.Render(fmt.Sprintf("%-*s", width, col.Title()))
		lines = append(lines, label+"  "+col.Render.Apply(pnl.record.Field(col.Key)))
	}
	for _, key := range extra {
		label := style.MutedStyle.Render(fmt.Sprintf("%-*s", width, key))
		lines = append(lines, label+"  "+pnl.record.Field(key).String())
	}

	pnl.contentLines = lines
}
