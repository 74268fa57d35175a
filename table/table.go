// Package table draws a grid.View in the terminal with lipgloss.
package table

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"datagrid/grid"
	"datagrid/selection"
	"datagrid/style"
)

const (
	// HeaderHeight is the header row plus its separator.
	HeaderHeight = 2
	// PagerHeight is the blank line and the pager line.
	PagerHeight = 2

	defaultWidth = 16
	skeletonCell = "░░░░░░░░"
)

// Cursor is the focused body row and visible column.
type Cursor struct {
	Row int
	Col int
}

// Render draws a view. Cursor is ignored outside of ModeRows.
func Render(view grid.View, cursor Cursor) string {

	switch view.Mode {
	case grid.ModeLoading:
		return renderSkeleton(view)
	case grid.ModeEmpty:
		return renderEmpty(view)
	}

	lgt := table.New()
	style.StyleTable(lgt)

	lgt.Headers(headers(view)...)

	checked := make([]bool, len(view.Rows))
	for i, row := range view.Rows {
		checked[i] = row.Checked
		lgt.Row(cells(view, row)...)
	}

	col := cursor.Col
	if view.Selectable {
		col++
	}
	lgt.StyleFunc(style.GridStyler(cursor.Row, col, checked))

	out := lgt.Render()
	if view.Pager != nil {
		out += "\n\n" + RenderPager(*view.Pager)
	}
	return out
}

// RenderPager draws the pager control, e.g. "‹ 1 … 4 [5] 6 … 10 ›  50/page".
func RenderPager(pgr grid.Pager) string {

	parts := []string{arrow("‹", pgr.Page > 1)}
	for _, item := range pgr.Items {
		switch {
		case item.IsEllipsis():
			parts = append(parts, style.MutedStyle.Render("…"))
		case item.Page == pgr.Page:
			parts = append(parts, style.CurrentPageStyle.Render(fmt.Sprintf(" %d ", item.Page)))
		default:
			parts = append(parts, fmt.Sprintf("%d", item.Page))
		}
	}
	parts = append(parts, arrow("›", pgr.Page < pgr.TotalPages))

	return strings.Join(parts, " ") + style.MutedStyle.Render(fmt.Sprintf("  %d/page", pgr.PerPage))
}

// Checkbox draws a checkbox state.
func Checkbox(check selection.Check) string {
	switch check {
	case selection.Checked:
		return "[x]"
	case selection.Indeterminate:
		return "[-]"
	}
	return "[ ]"
}

// BodyRows is how many rows fit in height once header and pager are drawn.
func BodyRows(height int) int {
	return max(height-HeaderHeight-PagerHeight, 1)
}

// Scroll trims the rows of view to those fitting in height, keeping the
// cursor row in sight, and returns the cursor relative to the kept rows.
// A height of zero or less keeps everything.
func Scroll(view grid.View, cursor Cursor, height int) (grid.View, Cursor) {

	if height <= 0 || view.Mode != grid.ModeRows {
		return view, cursor
	}

	rows := BodyRows(height)
	if len(view.Rows) <= rows {
		return view, cursor
	}

	top := min(max(cursor.Row-rows+1, 0), len(view.Rows)-rows)
	view.Rows = view.Rows[top : top+rows]
	cursor.Row -= top
	return view, cursor
}

// unexported

func headers(view grid.View) []string {

	var hdrs []string
	if view.Selectable {
		hdrs = append(hdrs, Checkbox(view.SelectAll))
	}

	for _, hdr := range view.Headers {
		label := hdr.Label
		if hdr.Indicator != "" {
			label += " " + hdr.Indicator
		}
		hdrs = append(hdrs, pad(label, width(hdr)))
	}
	return hdrs
}

func cells(view grid.View, row grid.Row) []string {

	var out []string
	if view.Selectable {
		check := selection.Unchecked
		if row.Checked {
			check = selection.Checked
		}
		out = append(out, Checkbox(check))
	}

	for i, cell := range row.Cells {
		out = append(out, truncate(cell, width(view.Headers[i])))
	}
	return out
}

func renderSkeleton(view grid.View) string {

	lgt := table.New()
	style.StyleTable(lgt)
	lgt.Headers(headers(view)...)

	per := len(view.Headers)
	if per == 0 {
		return ""
	}

	for range view.Skeleton / per {
		var row []string
		if view.Selectable {
			row = append(row, "   ")
		}
		for _, hdr := range view.Headers {
			row = append(row, style.SkeletonStyle.Render(truncate(skeletonCell, width(hdr))))
		}
		lgt.Row(row...)
	}
	return lgt.Render()
}

func renderEmpty(view grid.View) string {

	lines := []string{}
	if view.Empty.Icon != "" {
		lines = append(lines, view.Empty.Icon)
	}
	lines = append(lines, style.HeaderStyle.Render(view.Empty.Title))
	if view.Empty.Description != "" {
		lines = append(lines, style.MutedStyle.Render(view.Empty.Description))
	}
	if view.Empty.Action != "" {
		lines = append(lines, "", "→ "+view.Empty.Action)
	}

	return style.BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func arrow(glyph string, enabled bool) string {
	if enabled {
		return glyph
	}
	return style.MutedStyle.Render(glyph)
}

func width(hdr grid.Header) int {
	if hdr.Width > 0 {
		return hdr.Width
	}
	return defaultWidth
}

func pad(in string, width int) string {
	return fmt.Sprintf("%-*s", width, truncate(in, width))
}

func truncate(in string, width int) string {

	runes := []rune(in)
	if len(runes) <= width {
		return in
	}
	if width < 2 {
		return string(runes[:width])
	}

	return string(runes[:width-1]) + "…"
}
