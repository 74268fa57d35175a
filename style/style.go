package style

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var (
	TableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Subtle warm grey border
	HeaderStyle      = lipgloss.NewStyle().Bold(true)
	HlRowStyle       = lipgloss.NewStyle().Background(lipgloss.Color("235")) // Very subtle warm grey row
	HlColStyle       = lipgloss.NewStyle().Background(lipgloss.Color("234")) // Twice as subtle - barely visible
	HlCellStyle      = lipgloss.NewStyle().Background(lipgloss.Color("237")) // Slightly warmer cell
	CheckedRowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("150")) // Soft green for selected rows
	MutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("246")) // Warm muted grey text
	SkeletonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	CurrentPageStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	ErrorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	BoxStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	UnStyle          = lipgloss.NewStyle()
)

// GridStyler returns a StyleFunc highlighting the cursor cell, its row and column,
// and coloring checked rows. Header cells are bold.
func GridStyler(cursorRow, cursorCol int, checked []bool) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			if col == cursorCol {
				return HeaderStyle.Inherit(HlColStyle)
			}
			return HeaderStyle
		}

		base := UnStyle
		if row >= 0 && row < len(checked) && checked[row] {
			base = CheckedRowStyle
		}

		rowMatch := row == cursorRow
		colMatch := col == cursorCol

		switch {
		case rowMatch && colMatch:
			return base.Inherit(HlCellStyle)
		case rowMatch:
			return base.Inherit(HlRowStyle)
		case colMatch:
			return base.Inherit(HlColStyle)
		}
		return base
	}
}

// StyleTable applies consistent table styling for borders and separators
func StyleTable(tbl *table.Table) {
	tbl.Border(lipgloss.Border{
		Top:         "─", // Horizontal parts of separator
		Middle:      "─", // Between columns in separator
		MiddleLeft:  "─", // Left edge of separator
		MiddleRight: "─", // Right edge of separator
	}).
		BorderTop(false).    // Disable top border
		BorderBottom(false). // Disable bottom border
		BorderLeft(false).   // Disable left border
		BorderRight(false).  // Disable right border
		BorderColumn(false). // Disable column separators
		BorderStyle(TableBorderStyle)
}
