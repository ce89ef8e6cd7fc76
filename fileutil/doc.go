// Package fileutil provides convenience wrappers for common file and
// directory operations: JSON and line-oriented I/O, copy/move/delete,
// glob search, zip archiving, and timestamped backups. Write operations
// create missing parent directories.
package fileutil
