package main

import (
	"os"
	"path/filepath"
	"testing"

	nt "datagrid/entity"
)

var (
	columns = []nt.Column{{Key: "name", Label: "Name"}, {Key: "fund"}}
	records = []nt.Record{
		{"name": {Raw: "Ada"}, "fund": {Raw: `Say "Hi" Capital`}},
	}
)

const wantCSV = "\"Name\",\"fund\"\n\"Ada\",\"Say \"\"Hi\"\" Capital\""

func TestWriteFileAbsolute(t *testing.T) {
	out := filepath.Join(t.TempDir(), "leads.csv")

	path, err := writeFile(out, records, columns)
	if err != nil {
		t.Fatalf("writeFile() error: %v", err)
	}
	if path != out {
		t.Errorf("writeFile() path = %q, want %q", path, out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if string(data) != wantCSV {
		t.Errorf("export = %q, want %q", data, wantCSV)
	}
}

func TestWriteStdout(t *testing.T) {
	tests := []struct {
		name    string
		records []nt.Record
		want    string
	}{
		{"no records", nil, ""},
		{"records", records, wantCSV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := os.CreateTemp(t.TempDir(), "out")
			if err != nil {
				t.Fatal(err)
			}
			defer out.Close()

			if err := writeStdout(out, tt.records, columns); err != nil {
				t.Fatalf("writeStdout() error: %v", err)
			}

			data, err := os.ReadFile(out.Name())
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.want {
				t.Errorf("writeStdout() = %q, want %q", data, tt.want)
			}
		})
	}
}
