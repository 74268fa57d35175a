package grid

import (
	"reflect"
	"testing"
	"time"

	nt "datagrid/entity"
	"datagrid/selection"
	"datagrid/visibility"
)

var columns = []nt.Column{
	{Key: "name", Label: "Name", Sortable: true},
	{Key: "score", Label: "Score", Sortable: true, Render: nt.Render{Kind: nt.RenderFixed, Places: 1}},
	{Key: "scraped_at", Label: "Scraped", Render: nt.Render{Kind: nt.RenderTime, Format: "2006-01-02"}},
	{Key: "id", Hidden: true},
}

func rows(n int) []nt.Record {
	recs := make([]nt.Record, n)
	for i := range recs {
		recs[i] = nt.Record{
			"id":         {Raw: string(rune('a' + i))},
			"name":       {Raw: "lead"},
			"score":      {Raw: 7.25},
			"scraped_at": {Raw: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		}
	}
	return recs
}

func props(recs []nt.Record) Props[nt.Record] {
	return Props[nt.Record]{
		Columns:    columns,
		Rows:       recs,
		Total:      125,
		Page:       1,
		PerPage:    50,
		Selectable: true,
		Selected:   selection.Clear(),
		Sort:       nt.Sort{Key: "name", Direction: nt.Asc},
		RowKey:     func(rec nt.Record) string { return rec.Field("id").String() },
		Field:      nt.Record.Field,
	}
}

func TestBuildRows(t *testing.T) {
	prp := props(rows(3))
	prp.Selected = selection.New("b")

	view := Build(prp)

	if view.Mode != ModeRows {
		t.Fatalf("Mode = %v, want ModeRows", view.Mode)
	}
	if len(view.Headers) != 3 {
		t.Fatalf("Headers = %v, want 3 visible", view.Headers)
	}
	if view.Headers[0].Indicator != "▲" || view.Headers[1].Indicator != "↕" || view.Headers[2].Indicator != "" {
		t.Errorf("indicators = %q %q %q", view.Headers[0].Indicator, view.Headers[1].Indicator, view.Headers[2].Indicator)
	}
	if view.SelectAll != selection.Indeterminate {
		t.Errorf("SelectAll = %v, want Indeterminate", view.SelectAll)
	}

	want := []string{"lead", "7.3", "2024-03-01"}
	if !reflect.DeepEqual(view.Rows[0].Cells, want) {
		t.Errorf("Cells = %v, want %v", view.Rows[0].Cells, want)
	}
	if !view.Rows[1].Checked || view.Rows[0].Checked {
		t.Errorf("Checked = %v %v, want false true", view.Rows[0].Checked, view.Rows[1].Checked)
	}

	if view.Pager == nil || view.Pager.TotalPages != 3 {
		t.Fatalf("Pager = %+v, want 3 pages", view.Pager)
	}
	if len(view.Pager.Items) != 3 {
		t.Errorf("Pager.Items = %v, want 1..3", view.Pager.Items)
	}
}

func TestBuildLoading(t *testing.T) {
	prp := props(rows(3))
	prp.Loading = true
	prp.SkeletonRows = 4

	view := Build(prp)
	if view.Mode != ModeLoading || view.Skeleton != 12 {
		t.Errorf("Mode = %v Skeleton = %d, want ModeLoading 12", view.Mode, view.Skeleton)
	}
	if view.Rows != nil || view.Pager != nil {
		t.Error("loading view has rows or pager")
	}
}

func TestBuildEmpty(t *testing.T) {
	prp := props(nil)
	prp.Total = 0
	prp.Empty = Empty{Title: "No leads yet", Action: "Run a campaign"}

	view := Build(prp)
	if view.Mode != ModeEmpty || view.Empty.Title != "No leads yet" {
		t.Errorf("Mode = %v Empty = %+v", view.Mode, view.Empty)
	}
	if view.Pager != nil {
		t.Error("empty view has a pager")
	}

	prp.Empty = Empty{}
	if got := Build(prp).Empty.Title; got == "" {
		t.Error("default empty title missing")
	}
}

func TestBuildSinglePage(t *testing.T) {
	prp := props(rows(2))
	prp.Total = 2
	if view := Build(prp); view.Pager != nil {
		t.Errorf("Pager = %+v, want none for one page", view.Pager)
	}
}

func TestBuildVisible(t *testing.T) {
	prp := props(rows(1))
	visible := visibility.NewSet("score")
	prp.Visible = &visible

	view := Build(prp)
	if len(view.Headers) != 1 || view.Headers[0].Key != "score" {
		t.Errorf("Headers = %v, want score only", view.Headers)
	}
	if len(view.Rows[0].Cells) != 1 {
		t.Errorf("Cells = %v, want one", view.Rows[0].Cells)
	}
}

func TestDispatchSort(t *testing.T) {
	prp := props(rows(1))

	got := Dispatch(prp, HeaderClick{Key: "name"})
	want := []Intent{SortChange{Sort: nt.Sort{Key: "name", Direction: nt.Desc}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dispatch(name) = %v, want %v", got, want)
	}

	got = Dispatch(prp, HeaderClick{Key: "score"})
	want = []Intent{SortChange{Sort: nt.Sort{Key: "score", Direction: nt.Asc}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dispatch(score) = %v, want %v", got, want)
	}

	if got := Dispatch(prp, HeaderClick{Key: "scraped_at"}); got != nil {
		t.Errorf("Dispatch(unsortable) = %v, want nil", got)
	}
}

func TestDispatchSelection(t *testing.T) {
	prp := props(rows(2))
	prp.Selected = selection.New("z")

	intents := Dispatch(prp, ToggleAll{})
	if len(intents) != 1 {
		t.Fatalf("Dispatch(ToggleAll) = %v", intents)
	}
	got := intents[0].(SelectionChange).Selected.IDs()
	if !reflect.DeepEqual(got, []string{"a", "b", "z"}) {
		t.Errorf("after ToggleAll = %v, want [a b z]", got)
	}
	if prp.Selected.Len() != 1 {
		t.Error("Dispatch mutated the owner's selection")
	}

	intents = Dispatch(prp, ToggleRow{ID: "z"})
	if got := intents[0].(SelectionChange).Selected.Len(); got != 0 {
		t.Errorf("after ToggleRow(z) len = %d, want 0", got)
	}

	prp.Selectable = false
	if got := Dispatch(prp, ToggleRow{ID: "a"}); got != nil {
		t.Errorf("Dispatch on unselectable grid = %v", got)
	}
}

func TestDispatchPaging(t *testing.T) {
	prp := props(rows(1))

	tests := []struct {
		event Event
		want  []Intent
	}{
		{GoPage{Page: 2}, []Intent{PageChange{Page: 2}}},
		{GoPage{Page: 4}, nil},
		{GoPage{Page: 1}, nil},
		{SetPerPage{PerPage: 25}, []Intent{PerPageChange{PerPage: 25}}},
		{SetPerPage{PerPage: 50}, nil},
		{ToggleColumn{Key: "score"}, []Intent{VisibleChange{Key: "score"}}},
		{ToggleColumn{Key: "bogus"}, nil},
		{ToggleColumn{Key: "id"}, nil},
		{ResetColumns{}, []Intent{VisibleChange{Reset: true}}},
	}
	for _, tt := range tests {
		if got := Dispatch(prp, tt.event); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Dispatch(%#v) = %v, want %v", tt.event, got, tt.want)
		}
	}
}

func TestDispatchClearAll(t *testing.T) {
	prp := props(rows(2))

	if got := Dispatch(prp, ClearAll{}); got != nil {
		t.Errorf("Dispatch(ClearAll) with nothing selected = %v", got)
	}

	prp.Selected = selection.New("a", "elsewhere")
	want := []Intent{SelectionChange{Selected: selection.Clear()}}
	if got := Dispatch(prp, ClearAll{}); !reflect.DeepEqual(got, want) {
		t.Errorf("Dispatch(ClearAll) = %v, want %v", got, want)
	}

	prp.Selectable = false
	if got := Dispatch(prp, ClearAll{}); got != nil {
		t.Errorf("Dispatch(ClearAll) on unselectable grid = %v", got)
	}
}

func TestEmit(t *testing.T) {
	prp := props(rows(1))

	var page int
	var srt nt.Sort
	prp.OnPageChange = func(pg int) { page = pg }
	prp.OnSort = func(s nt.Sort) { srt = s }

	Emit(prp, []Intent{
		PageChange{Page: 3},
		SortChange{Sort: nt.Sort{Key: "score", Direction: nt.Desc}},
		PerPageChange{PerPage: 10}, // no callback
	})

	if page != 3 || srt.Key != "score" {
		t.Errorf("callbacks got page %d sort %v", page, srt)
	}
}
