package fileutil

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func setupTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"a.json":          `{}`,
		"b.txt":           "b",
		"sub/c.json":      `{"c":1}`,
		"sub/deep/d.json": `{"d":1}`,
		"sub/e.txt":       "e",
	}
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := EnsureDir(filepath.Dir(path)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return dir
}

func relNames(t *testing.T, dir string, paths []string) []string {
	t.Helper()
	var rels []string
	for _, p := range paths {
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rels = append(rels, filepath.ToSlash(rel))
	}
	sort.Strings(rels)
	return rels
}

func TestFindFiles_Recursive(t *testing.T) {
	dir := setupTree(t)

	got, err := FindFiles(dir, "*.json", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rels := relNames(t, dir, got)
	want := []string{"a.json", "sub/c.json", "sub/deep/d.json"}
	if len(rels) != len(want) {
		t.Fatalf("matches = %v, want %v", rels, want)
	}
	for i := range want {
		if rels[i] != want[i] {
			t.Errorf("matches = %v, want %v", rels, want)
			break
		}
	}
}

func TestFindFiles_NonRecursive(t *testing.T) {
	dir := setupTree(t)

	got, err := FindFiles(dir, "*.json", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rels := relNames(t, dir, got)
	if len(rels) != 1 || rels[0] != "a.json" {
		t.Errorf("matches = %v, want [a.json]", rels)
	}
}

func TestFindFiles_DefaultPattern(t *testing.T) {
	dir := setupTree(t)

	got, err := FindFiles(dir, "", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("expected all 5 files, got %d", len(got))
	}
}

func TestFindFiles_DoublestarPattern(t *testing.T) {
	dir := setupTree(t)

	got, err := FindFiles(dir, "sub/**/*.json", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rels := relNames(t, dir, got)
	want := []string{"sub/c.json", "sub/deep/d.json"}
	if len(rels) != 2 || rels[0] != want[0] || rels[1] != want[1] {
		t.Errorf("matches = %v, want %v", rels, want)
	}
}

func TestZipDirectory(t *testing.T) {
	dir := setupTree(t)
	output := filepath.Join(t.TempDir(), "out", "archive.zip")

	if err := ZipDirectory(dir, output); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	zr, err := zip.OpenReader(output)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer zr.Close()

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{"a.json", "b.txt", "sub/c.json", "sub/deep/d.json", "sub/e.txt"} {
		if !names[want] {
			t.Errorf("archive missing %s (has %v)", want, names)
		}
	}
}
