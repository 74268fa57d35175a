package detail

import (
	"regexp"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	nt "datagrid/entity"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func TestPanelShow(t *testing.T) {
	columns := []nt.Column{
		{Key: "name", Label: "Name"},
		{Key: "verified", Label: "Verified", Render: nt.Render{Kind: nt.RenderCheck}},
	}
	rec := nt.Record{
		"name":     {Raw: "Ada"},
		"verified": {Raw: true},
		"source":   {Raw: "crunchbase"},
		"id":       {Raw: "7"},
	}

	pnl := New(columns).Show(rec)
	if !pnl.Open {
		t.Fatal("panel not open")
	}

	got := []string{}
	for _, line := range pnl.Lines() {
		got = append(got, strings.Join(strings.Fields(stripANSI(line)), " "))
	}

	want := []string{"Name Ada", "Verified ✓", "id 7", "source crunchbase"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Lines() = %q, want %q", got, want)
	}
}

func TestPanelScroll(t *testing.T) {
	rec := nt.Record{}
	for _, key := range []string{"a", "b", "c", "d", "e"} {
		rec[key] = nt.Value{Raw: key}
	}

	pnl := New(nil).Show(rec)
	pnl.Height = 3

	down := tea.KeyPressMsg{Code: 'j', Text: "j"}
	for range 5 {
		pnl = pnl.Update(down)
	}
	if pnl.ScrollOffset != 2 {
		t.Errorf("ScrollOffset = %d, want 2", pnl.ScrollOffset)
	}

	pnl = pnl.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if pnl.Open {
		t.Error("panel still open after esc")
	}
}
