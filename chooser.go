package datagrid

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	nt "datagrid/entity"
	"datagrid/grid"
	"datagrid/style"
	"datagrid/visibility"
)

// chooser is the column visibility panel.
type chooser struct {
	open bool
	pos  int
}

func (m Model) updateChooser(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	offered := visibility.Defaults(m.layout.Columns).Filter(m.layout.Columns)

	var event grid.Event

	switch msg.String() {
	case "esc", "c", "q":
		m.chooser.open = false
	case "up", "k":
		m.chooser.pos = max(m.chooser.pos-1, 0)
	case "down", "j":
		m.chooser.pos = min(m.chooser.pos+1, max(len(offered)-1, 0))
	case "space", " ", "enter":
		if m.chooser.pos < len(offered) {
			event = grid.ToggleColumn{Key: offered[m.chooser.pos].Key}
		}
	case "r":
		event = grid.ResetColumns{}
	}

	if event == nil {
		return m, nil
	}
	return m.apply(grid.Dispatch(m.props(), event))
}

func (chs chooser) render(columns []nt.Column, visible visibility.Set) string {

	offered := visibility.Defaults(columns).Filter(columns)

	lines := []string{style.HeaderStyle.Render("Columns")}
	for i, col := range offered {
		box := "[ ]"
		if visible.Has(col.Key) {
			box = "[x]"
		}

		line := box + " " + col.Title()
		if i == chs.pos {
			line = style.HlCellStyle.Render(line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", style.MutedStyle.Render("space toggle · r reset · esc close"))

	return style.BoxStyle.Render(strings.Join(lines, "\n"))
}
