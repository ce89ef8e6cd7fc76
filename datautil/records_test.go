package datautil

import (
	"reflect"
	"testing"
)

func TestCleanRecords(t *testing.T) {
	records := []Record{
		{"name": "  Alice  ", "email": "", "phone": nil, "age": 30},
		{"name": "Bob", "note": "   "},
	}

	cleaned := CleanRecords(records, DefaultCleanOptions())

	if cleaned[0]["name"] != "Alice" {
		t.Errorf("name = %q, want stripped", cleaned[0]["name"])
	}
	if _, ok := cleaned[0]["email"]; ok {
		t.Error("empty strings must be removed")
	}
	if _, ok := cleaned[0]["phone"]; ok {
		t.Error("nil values must be removed")
	}
	if cleaned[0]["age"] != 30 {
		t.Errorf("age = %v", cleaned[0]["age"])
	}
	if _, ok := cleaned[1]["note"]; ok {
		t.Error("whitespace-only strings strip to empty and must be removed")
	}
}

func TestCleanRecords_Disabled(t *testing.T) {
	records := []Record{{"a": "  x  ", "b": "", "c": nil}}
	cleaned := CleanRecords(records, CleanOptions{})
	if !reflect.DeepEqual(cleaned[0], records[0]) {
		t.Errorf("cleaned = %#v, want untouched copy", cleaned[0])
	}
}

func TestGroupBy(t *testing.T) {
	records := []Record{
		{"name": "a", "team": "red"},
		{"name": "b", "team": "blue"},
		{"name": "c", "team": "red"},
		{"name": "d"},
	}

	grouped := GroupBy(records, "team")
	if len(grouped["red"]) != 2 {
		t.Errorf("red = %d records, want 2", len(grouped["red"]))
	}
	if len(grouped["blue"]) != 1 {
		t.Errorf("blue = %d records, want 1", len(grouped["blue"]))
	}
	if len(grouped[""]) != 1 {
		t.Errorf("missing key group = %d records, want 1", len(grouped[""]))
	}
}

func TestSortBy_Strings(t *testing.T) {
	records := []Record{
		{"name": "Charlie"},
		{"name": "Alice"},
		{"name": "Bob"},
	}

	asc := SortBy(records, "name", false)
	if asc[0]["name"] != "Alice" || asc[2]["name"] != "Charlie" {
		t.Errorf("ascending = %v", asc)
	}

	desc := SortBy(records, "name", true)
	if desc[0]["name"] != "Charlie" || desc[2]["name"] != "Alice" {
		t.Errorf("descending = %v", desc)
	}

	// Input order untouched.
	if records[0]["name"] != "Charlie" {
		t.Error("SortBy mutated its input")
	}
}

func TestSortBy_Numbers(t *testing.T) {
	records := []Record{{"n": 10}, {"n": 2}, {"n": 1}}
	sorted := SortBy(records, "n", false)
	if sorted[0]["n"] != 1 || sorted[1]["n"] != 2 || sorted[2]["n"] != 10 {
		t.Errorf("numeric sort = %v, want [1 2 10]", sorted)
	}
}

func TestUniqueByKey(t *testing.T) {
	records := []Record{
		{"id": 1, "v": "first"},
		{"id": 2, "v": "second"},
		{"id": 1, "v": "dup"},
	}

	unique := UniqueByKey(records, "id")
	if len(unique) != 2 {
		t.Fatalf("unique = %d records, want 2", len(unique))
	}
	if unique[0]["v"] != "first" {
		t.Error("first occurrence must win")
	}
}

func TestExtractValues(t *testing.T) {
	records := []Record{
		{"name": "a", "age": 1},
		{"name": "b"},
		{"age": 3},
	}

	names := ExtractValues(records, "name")
	if !reflect.DeepEqual(names, []any{"a", "b"}) {
		t.Errorf("names = %v, want [a b]", names)
	}
}

func TestPaginate(t *testing.T) {
	records := make([]Record, 25)
	for i := range records {
		records[i] = Record{"i": i}
	}

	page := Paginate(records, 10, 2)
	if len(page.Data) != 10 {
		t.Errorf("page 2 size = %d, want 10", len(page.Data))
	}
	if page.Data[0]["i"] != 10 {
		t.Errorf("page 2 starts at %v, want 10", page.Data[0]["i"])
	}
	if page.Pagination.TotalPages != 3 || page.Pagination.TotalItems != 25 {
		t.Errorf("pagination = %+v", page.Pagination)
	}
	if !page.Pagination.HasNext || !page.Pagination.HasPrev {
		t.Errorf("pagination = %+v, want HasNext and HasPrev", page.Pagination)
	}

	last := Paginate(records, 10, 3)
	if len(last.Data) != 5 {
		t.Errorf("last page size = %d, want 5", len(last.Data))
	}
	if last.Pagination.HasNext {
		t.Error("last page must not have next")
	}

	beyond := Paginate(records, 10, 9)
	if len(beyond.Data) != 0 {
		t.Errorf("out-of-range page size = %d, want 0", len(beyond.Data))
	}

	defaults := Paginate(records, 0, 0)
	if defaults.Pagination.PageSize != 10 || defaults.Pagination.CurrentPage != 1 {
		t.Errorf("defaults = %+v", defaults.Pagination)
	}
}
