package datautil

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/validvar/dev-tooling/fileutil"
)

// ReadCSV reads a CSV file with a header row and returns one record per
// data row, keyed by the header columns. All values are strings.
func ReadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("datautil: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("datautil: parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return []Record{}, nil
	}

	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteCSV writes records to a CSV file, deriving the header from the
// first record's keys (sorted for deterministic output) and creating
// parent directories as needed. An empty record set writes nothing and
// returns nil.
func WriteCSV(path string, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	header := make([]string, 0, len(records[0]))
	for k := range records[0] {
		header = append(header, k)
	}
	sort.Strings(header)

	if err := fileutil.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("datautil: create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	writeErr := w.Write(header)
	for _, rec := range records {
		if writeErr != nil {
			break
		}
		row := make([]string, len(header))
		for i, col := range header {
			if v, ok := rec[col]; ok && v != nil {
				row[i] = fmt.Sprint(v)
			}
		}
		writeErr = w.Write(row)
	}
	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}

	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("datautil: write %s: %w", path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("datautil: close %s: %w", path, closeErr)
	}
	return nil
}
