package datautil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "people.csv")
	records := []Record{
		{"name": "Alice", "age": 30, "city": "Oslo"},
		{"name": "Bob", "age": 25, "city": "Lima"},
	}

	if err := WriteCSV(path, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("rows = %d, want 2", len(got))
	}
	// CSV values come back as strings.
	if got[0]["name"] != "Alice" || got[0]["age"] != "30" {
		t.Errorf("row 0 = %#v", got[0])
	}
	if got[1]["city"] != "Lima" {
		t.Errorf("row 1 = %#v", got[1])
	}
}

func TestWriteCSV_SortedHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h.csv")
	if err := WriteCSV(path, []Record{{"b": 1, "a": 2, "c": 3}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := strings.SplitN(string(raw), "\n", 2)[0]
	if strings.TrimSpace(first) != "a,b,c" {
		t.Errorf("header = %q, want a,b,c", first)
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := WriteCSV(path, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("no file should be written for empty input")
	}
}

func TestReadCSV_Errors(t *testing.T) {
	if _, err := ReadCSV(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadCSV_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("rows = %d, want 0", len(got))
	}
}
