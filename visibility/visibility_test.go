package visibility_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	nt "datagrid/entity"
	"datagrid/store/memo"
	"datagrid/visibility"
)

type fakeLogger struct {
	infos  []string
	errors []string
}

func (lgr *fakeLogger) Info(ctx context.Context, msg string, kv ...any) {
	lgr.infos = append(lgr.infos, msg)
}

func (lgr *fakeLogger) Error(ctx context.Context, msg string, err error, kv ...any) {
	lgr.errors = append(lgr.errors, msg)
}

type brokenStore struct{}

func (brokenStore) Get(id string) ([]byte, error)    { return nil, errors.New("disk on fire") }
func (brokenStore) Set(id string, data []byte) error { return errors.New("disk on fire") }
func (brokenStore) Clear(id string) error            { return errors.New("disk on fire") }

var columns = []nt.Column{
	{Key: "name", Label: "Name"},
	{Key: "fund", Label: "Fund"},
	{Key: "score", Label: "Score"},
	{Key: "id", Label: "ID", Hidden: true},
}

func TestHydrate(t *testing.T) {
	tests := []struct {
		name   string
		record string
		want   []string
	}{
		{"missing", "", []string{"name", "fund", "score"}},
		{"stored", `["score","name"]`, []string{"name", "score"}},
		{"corrupt", `["name",`, []string{"name", "fund", "score"}},
		{"not an array", `{"name":true}`, []string{"name", "fund", "score"}},
		{"unknown keys only", `["nope"]`, []string{"name", "fund", "score"}},
		{"hidden key dropped", `["id","fund"]`, []string{"fund"}},
		{"empty array", `[]`, []string{"name", "fund", "score"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memo.New()
			if tt.record != "" {
				_ = store.Set("leads", []byte(tt.record))
			}
			cols := visibility.New(context.Background(), store, &fakeLogger{})

			got := cols.Hydrate("leads", columns).Keys()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Hydrate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHydrateBrokenStore(t *testing.T) {
	lgr := &fakeLogger{}
	cols := visibility.New(context.Background(), brokenStore{}, lgr)

	got := cols.Hydrate("leads", columns)
	if got.Len() != 3 {
		t.Errorf("Hydrate() = %v, want defaults", got.Keys())
	}
	if len(lgr.errors) != 1 {
		t.Errorf("logged %d errors, want 1", len(lgr.errors))
	}
}

func TestToggle(t *testing.T) {
	store := memo.New()
	cols := visibility.New(context.Background(), store, &fakeLogger{})

	cur := cols.Hydrate("leads", columns)

	cur = cols.Toggle("leads", "fund", columns, cur)
	if cur.Has("fund") {
		t.Fatalf("Toggle(fund) = %v, want fund hidden", cur.Keys())
	}

	data, err := store.Get("leads")
	if err != nil || string(data) != `["name","score"]` {
		t.Errorf("persisted %s (err %v), want [\"name\",\"score\"]", data, err)
	}

	cur = cols.Toggle("leads", "fund", columns, cur)
	if !reflect.DeepEqual(cur.Keys(), []string{"name", "fund", "score"}) {
		t.Errorf("Toggle(fund) again = %v, want declared order", cur.Keys())
	}

	hydrated := cols.Hydrate("leads", columns)
	if !reflect.DeepEqual(hydrated.Keys(), cur.Keys()) {
		t.Errorf("Hydrate() after toggles = %v, want %v", hydrated.Keys(), cur.Keys())
	}
}

func TestToggleLastColumn(t *testing.T) {
	store := memo.New()
	cols := visibility.New(context.Background(), store, &fakeLogger{})

	cur := visibility.NewSet("name")
	got := cols.Toggle("leads", "name", columns, cur)

	if !reflect.DeepEqual(got.Keys(), []string{"name"}) {
		t.Errorf("Toggle(last) = %v, want [name]", got.Keys())
	}
	if _, err := store.Get("leads"); !errors.Is(err, visibility.ErrNotFound) {
		t.Errorf("no-op toggle persisted a record, err = %v", err)
	}
}

func TestToggleUnknown(t *testing.T) {
	cols := visibility.New(context.Background(), memo.New(), &fakeLogger{})

	cur := visibility.NewSet("name", "fund")
	for _, key := range []string{"bogus", "id"} {
		got := cols.Toggle("leads", key, columns, cur)
		if !reflect.DeepEqual(got.Keys(), cur.Keys()) {
			t.Errorf("Toggle(%s) = %v, want unchanged", key, got.Keys())
		}
	}
}

func TestReset(t *testing.T) {
	store := memo.New()
	cols := visibility.New(context.Background(), store, &fakeLogger{})

	cur := cols.Toggle("leads", "score", columns, cols.Hydrate("leads", columns))
	if cur.Has("score") {
		t.Fatalf("Toggle(score) = %v", cur.Keys())
	}

	got := cols.Reset("leads", columns)
	if !reflect.DeepEqual(got.Keys(), []string{"name", "fund", "score"}) {
		t.Errorf("Reset() = %v, want all offerable columns", got.Keys())
	}
	if _, err := store.Get("leads"); !errors.Is(err, visibility.ErrNotFound) {
		t.Errorf("Reset() left a record, err = %v", err)
	}
}

func TestTablesIsolated(t *testing.T) {
	store := memo.New()
	cols := visibility.New(context.Background(), store, &fakeLogger{})

	cols.Toggle("leads", "fund", columns, cols.Hydrate("leads", columns))

	if got := cols.Hydrate("crm_history", columns); got.Len() != 3 {
		t.Errorf("Hydrate(crm_history) = %v, want defaults", got.Keys())
	}
}

func TestFilter(t *testing.T) {
	set := visibility.NewSet("score", "name", "score")
	got := nt.Keys(set.Filter(columns))
	if !reflect.DeepEqual(got, []string{"name", "score"}) {
		t.Errorf("Filter() = %v, want [name score]", got)
	}
}
