package fileutil

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// FindFiles returns the paths under dir whose dir-relative path matches
// the doublestar glob pattern ("*" matches everything). When recursive is
// false only direct children are considered. Directories are excluded.
func FindFiles(dir, pattern string, recursive bool) ([]string, error) {
	if pattern == "" {
		pattern = "*"
	}

	var matches []string
	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("fileutil: read dir %s: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			ok, err := doublestar.Match(pattern, e.Name())
			if err != nil {
				return nil, fmt.Errorf("fileutil: bad pattern %q: %w", pattern, err)
			}
			if ok {
				matches = append(matches, filepath.Join(dir, e.Name()))
			}
		}
		return matches, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		// Match against both the relative path and the base name so that
		// "*.json" finds nested files, mirroring a recursive glob.
		ok, err := doublestar.Match(pattern, filepath.ToSlash(rel))
		if err != nil {
			return fmt.Errorf("fileutil: bad pattern %q: %w", pattern, err)
		}
		if !ok {
			ok, _ = doublestar.Match(pattern, d.Name())
		}
		if ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fileutil: walk %s: %w", dir, err)
	}
	return matches, nil
}

// ZipDirectory writes all files under dir into a zip archive at output,
// storing paths relative to dir. Parent directories of output are created
// as needed.
func ZipDirectory(dir, output string) error {
	if err := EnsureDir(filepath.Dir(output)); err != nil {
		return err
	}
	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("fileutil: create %s: %w", output, err)
	}

	zw := zip.NewWriter(out)
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		_, copyErr := io.Copy(w, f)
		_ = f.Close()
		return copyErr
	})
	if err != nil {
		_ = zw.Close()
		_ = out.Close()
		return fmt.Errorf("fileutil: zip %s: %w", dir, err)
	}

	if err := zw.Close(); err != nil {
		_ = out.Close()
		return fmt.Errorf("fileutil: finalize %s: %w", output, err)
	}
	return out.Close()
}
