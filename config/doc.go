// Package config loads configuration structs from YAML files, .env files,
// and environment variables, in that order of increasing precedence, and
// validates the result with struct tags.
package config
