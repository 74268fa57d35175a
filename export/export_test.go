package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	nt "datagrid/entity"
)

var columns = []nt.Column{
	{Key: "name", Label: "Name"},
	{Key: "note", Label: "Note"},
}

func field(rec nt.Record, key string) nt.Value {
	return rec.Field(key)
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`He said "hi"`, `"He said ""hi"""`},
		{"plain", `"plain"`},
		{"", `""`},
		{"a,b\nc", "\"a,b\nc\""},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.want {
			t.Errorf("Quote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	rows := []nt.Record{
		{"name": {Raw: "Ada"}, "note": {Raw: `He said "hi"`}},
		{"name": {Raw: "Bob"}},
	}

	got := String(rows, columns, field)
	want := `"Name","Note"` + "\n" + `"Ada","He said ""hi"""` + "\n" + `"Bob",""`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	orig := `He said "hi", then left` + "\n" + "again"
	rows := []nt.Record{{"name": {Raw: "Ada"}, "note": {Raw: orig}}}

	rdr := csv.NewReader(strings.NewReader(String(rows, columns, field)))
	records, err := rdr.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() err = %v", err)
	}

	want := [][]string{{"Name", "Note"}, {"Ada", orig}}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("parsed %q, want %q", records, want)
	}
}

func TestEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []nt.Record{}, columns, field); err != nil {
		t.Fatalf("Write() err = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Write() with no rows wrote %q", buf.String())
	}

	dir := t.TempDir()
	_, err := File(dir, "", []nt.Record{}, columns, field)
	if !errors.Is(err, ErrNoRows) {
		t.Errorf("File() err = %v, want ErrNoRows", err)
	}
	if _, err := os.Stat(filepath.Join(dir, DefaultName)); !os.IsNotExist(err) {
		t.Errorf("File() with no rows created a file, stat err = %v", err)
	}
}

func TestFile(t *testing.T) {
	rows := []nt.Record{{"name": {Raw: "Ada"}, "note": {Raw: 42}}}

	path, err := File(t.TempDir(), "", rows, columns, field)
	if err != nil {
		t.Fatalf("File() err = %v", err)
	}
	if filepath.Base(path) != DefaultName {
		t.Errorf("File() path = %s, want %s", path, DefaultName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"Name","Note"`+"\n"+`"Ada","42"` {
		t.Errorf("file contents = %q", data)
	}
}
