package datautil

import "strings"

// DefaultSeparator joins nested keys in flattened maps.
const DefaultSeparator = "."

// FlattenMap flattens a nested map into a single level, joining nested
// keys with sep (DefaultSeparator when empty).
func FlattenMap(nested map[string]any, sep string) map[string]any {
	if sep == "" {
		sep = DefaultSeparator
	}
	flat := make(map[string]any)
	flattenInto(flat, nested, "", sep)
	return flat
}

func flattenInto(dst map[string]any, src map[string]any, prefix, sep string) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + sep + k
		}
		if child, ok := v.(map[string]any); ok {
			flattenInto(dst, child, key, sep)
			continue
		}
		dst[key] = v
	}
}

// UnflattenMap rebuilds a nested map from flattened keys. Conflicting
// paths (a leaf where a branch is needed) are resolved in favor of the
// later key.
func UnflattenMap(flat map[string]any, sep string) map[string]any {
	if sep == "" {
		sep = DefaultSeparator
	}
	result := make(map[string]any)
	for key, value := range flat {
		parts := strings.Split(key, sep)
		node := result
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}
	return result
}

// MergeMaps merges maps left to right. With deep=true, nested maps present
// on both sides are merged recursively; otherwise later values replace
// earlier ones wholesale.
func MergeMaps(deep bool, maps ...map[string]any) map[string]any {
	result := make(map[string]any)
	for _, m := range maps {
		for k, v := range m {
			if deep {
				existing, okA := result[k].(map[string]any)
				incoming, okB := v.(map[string]any)
				if okA && okB {
					result[k] = MergeMaps(true, existing, incoming)
					continue
				}
			}
			result[k] = v
		}
	}
	return result
}

// FilterKeys returns a copy of data restricted to keys (include=true) or
// with keys removed (include=false).
func FilterKeys(data map[string]any, keys []string, include bool) map[string]any {
	keep := make(map[string]bool, len(keys))
	for _, k := range keys {
		keep[k] = true
	}
	result := make(map[string]any)
	for k, v := range data {
		if keep[k] == include {
			result[k] = v
		}
	}
	return result
}

// MissingKeys returns the required keys absent from data, in the order
// given.
func MissingKeys(data map[string]any, required []string) []string {
	var missing []string
	for _, k := range required {
		if _, ok := data[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}
