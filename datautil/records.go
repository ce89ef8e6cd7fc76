package datautil

import (
	"fmt"
	"sort"
	"strings"
)

// Record is a single row of loosely typed data.
type Record = map[string]any

// CleanOptions controls CleanRecords.
type CleanOptions struct {
	// RemoveEmpty drops fields whose value is the empty string.
	RemoveEmpty bool
	// RemoveNil drops fields whose value is nil.
	RemoveNil bool
	// StripStrings trims surrounding whitespace from string values
	// before the empty check.
	StripStrings bool
}

// DefaultCleanOptions enables all cleaning steps.
func DefaultCleanOptions() CleanOptions {
	return CleanOptions{RemoveEmpty: true, RemoveNil: true, StripStrings: true}
}

// CleanRecords returns a cleaned copy of the records according to opts.
func CleanRecords(records []Record, opts CleanOptions) []Record {
	cleaned := make([]Record, 0, len(records))
	for _, rec := range records {
		out := make(Record, len(rec))
		for k, v := range rec {
			if s, ok := v.(string); ok && opts.StripStrings {
				v = strings.TrimSpace(s)
			}
			if opts.RemoveEmpty && v == "" {
				continue
			}
			if opts.RemoveNil && v == nil {
				continue
			}
			out[k] = v
		}
		cleaned = append(cleaned, out)
	}
	return cleaned
}

// GroupBy groups records by the string form of the value at key. Records
// missing the key group under the empty string.
func GroupBy(records []Record, key string) map[string][]Record {
	grouped := make(map[string][]Record)
	for _, rec := range records {
		groupKey := ""
		if v, ok := rec[key]; ok && v != nil {
			groupKey = fmt.Sprint(v)
		}
		grouped[groupKey] = append(grouped[groupKey], rec)
	}
	return grouped
}

// SortBy returns a copy of the records sorted by the value at key.
// Numeric values order numerically, everything else by string form;
// missing keys sort first. The sort is stable.
func SortBy(records []Record, key string, descending bool) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return compareValues(sorted[j][key], sorted[i][key])
		}
		return compareValues(sorted[i][key], sorted[j][key])
	})
	return sorted
}

// compareValues reports whether a orders before b.
func compareValues(a, b any) bool {
	na, okA := toFloat(a)
	nb, okB := toFloat(b)
	if okA && okB {
		return na < nb
	}
	return valueString(a) < valueString(b)
}

func valueString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// UniqueByKey keeps the first record for each distinct value at key,
// preserving order. Records missing the key count as sharing one value.
func UniqueByKey(records []Record, key string) []Record {
	seen := make(map[string]bool)
	unique := make([]Record, 0, len(records))
	for _, rec := range records {
		v := valueString(rec[key])
		if seen[v] {
			continue
		}
		seen[v] = true
		unique = append(unique, rec)
	}
	return unique
}

// ExtractValues collects the values at key from records that carry it.
func ExtractValues(records []Record, key string) []any {
	var values []any
	for _, rec := range records {
		if v, ok := rec[key]; ok {
			values = append(values, v)
		}
	}
	return values
}

// Pagination describes the position of a page within a record set.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	PageSize    int  `json:"page_size"`
	TotalItems  int  `json:"total_items"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

// Page is one page of records plus its pagination metadata.
type Page struct {
	Data       []Record   `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Paginate slices records into the requested 1-indexed page. Out-of-range
// pages yield an empty data slice with accurate metadata.
func Paginate(records []Record, pageSize, page int) Page {
	if pageSize <= 0 {
		pageSize = 10
	}
	if page <= 0 {
		page = 1
	}

	total := len(records)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Data: records[start:end],
		Pagination: Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			PageSize:    pageSize,
			TotalItems:  total,
			HasNext:     page < totalPages,
			HasPrev:     page > 1,
		},
	}
}
