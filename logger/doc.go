// Package logger provides a zerolog-backed logging layer with colored
// console output, JSON output, environment-driven configuration, and a
// package-level global logger. It is independent infrastructure: nothing
// in this module's control flow depends on it.
package logger
