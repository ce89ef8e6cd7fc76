// Package datautil provides stateless transformations over generic maps
// and records (slices of maps): flatten/unflatten, deep merge, key
// filtering, grouping, sorting, deduplication, pagination, and CSV
// round-tripping. Every function returns a new value; inputs are never
// mutated.
package datautil
