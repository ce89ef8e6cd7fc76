package fileutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const dirPerm = 0o755

// EnsureDir creates the directory (and any missing parents) if it does
// not exist.
func EnsureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, dirPerm)
}

// ReadJSON reads and decodes a JSON file into v.
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("fileutil: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("fileutil: invalid JSON in %s: %w", path, err)
	}
	return nil
}

// ReadJSONMap reads a JSON object file into a generic map.
func ReadJSONMap(path string) (map[string]any, error) {
	var m map[string]any
	if err := ReadJSON(path, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// WriteJSON writes v to path as indented JSON, creating parent
// directories as needed.
func WriteJSON(path string, v any, indent int) error {
	data, err := json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	if err != nil {
		return fmt.Errorf("fileutil: marshal JSON for %s: %w", path, err)
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadLines reads a text file and returns its lines without trailing
// line terminators.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fileutil: read %s: %w", path, err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{}, nil
	}
	return strings.Split(text, "\n"), nil
}

// WriteLines joins lines with newlines and writes them to path, creating
// parent directories as needed.
func WriteLines(path string, lines []string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
}

// CopyFile copies src to dst, creating dst's parent directories. The
// source permissions are preserved.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("fileutil: open %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("fileutil: stat %s: %w", src, err)
	}

	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("fileutil: create %s: %w", dst, err)
	}

	_, copyErr := io.Copy(out, in)
	closeErr := out.Close()
	if copyErr != nil {
		return fmt.Errorf("fileutil: copy %s to %s: %w", src, dst, copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("fileutil: close %s: %w", dst, closeErr)
	}
	return nil
}

// MoveFile moves src to dst, creating dst's parent directories. Falls
// back to copy-and-delete when a rename crosses filesystems.
func MoveFile(src, dst string) error {
	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return err
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := CopyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// DeleteFile removes the file if it exists. Returns true when a file was
// actually deleted, false when there was nothing to delete.
func DeleteFile(path string) (bool, error) {
	err := os.Remove(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("fileutil: delete %s: %w", path, err)
}

// Exists reports whether the path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Info describes a file or directory.
type Info struct {
	// Name is the base name.
	Name string
	// Path is the absolute path.
	Path string
	// Size is the size in bytes.
	Size int64
	// SizeMB is the size in mebibytes, rounded to two decimals.
	SizeMB float64
	// Modified is the last modification time.
	Modified time.Time
	// IsDir reports whether the path is a directory.
	IsDir bool
	// Ext is the file extension including the dot.
	Ext string
}

// Stat returns information about the file at path.
func Stat(path string) (*Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("fileutil: stat %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &Info{
		Name:     fi.Name(),
		Path:     abs,
		Size:     fi.Size(),
		SizeMB:   float64(int64(float64(fi.Size())/(1024*1024)*100+0.5)) / 100,
		Modified: fi.ModTime(),
		IsDir:    fi.IsDir(),
		Ext:      filepath.Ext(path),
	}, nil
}

// BackupFile copies the file to a timestamped sibling
// (name_20060102_150405.ext), or into backupDir when given. Returns the
// backup path.
func BackupFile(path, backupDir string) (string, error) {
	if !Exists(path) {
		return "", fmt.Errorf("fileutil: backup source not found: %s", path)
	}
	if backupDir == "" {
		backupDir = filepath.Dir(path)
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	stamp := time.Now().Format("20060102_150405")
	backupPath := filepath.Join(backupDir, fmt.Sprintf("%s_%s%s", stem, stamp, ext))

	if err := CopyFile(path, backupPath); err != nil {
		return "", err
	}
	return backupPath, nil
}
