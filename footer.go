package datagrid

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"datagrid/message"
	"datagrid/style"
)

// RenderFooter renders a footer with metadata about the grid.
func RenderFooter(left, right string, width int) string {
	// Calculate padding
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	footer := style.TableBorderStyle.Render(left + strings.Repeat(" ", padding) + right)
	return footer
}

// RenderError renders an error in place of the footer.
func RenderError(msg string, width int) string {
	if width > 0 && lipgloss.Width(msg) > width {
		msg = string([]rune(msg)[:max(width-1, 0)]) + "…"
	}
	return style.ErrorStyle.Render(msg)
}

// unexported

func (m Model) footerLeft() string {

	parts := []string{}
	if m.total > 0 {
		state := m.pagination()
		first := state.Offset() + 1
		last := min(state.Offset()+len(m.records), m.total)
		parts = append(parts, fmt.Sprintf("%d-%d of %d", first, last, m.total))
	}
	if m.selected.Len() > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", m.selected.Len()))
	}
	if m.sort.Active() {
		parts = append(parts, fmt.Sprintf("sort %s %s", m.sort.Key, m.sort.Direction))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}

	return strings.Join(parts, "  ·  ")
}

func exportedStatus(msg message.ExportedMsg) string {
	return fmt.Sprintf("exported %d to %s", msg.Count, msg.Path)
}
