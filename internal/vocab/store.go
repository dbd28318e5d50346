package vocab

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Supported source encodings, keyed by file extension.
const (
	ExtTxt = ".txt"
	ExtCSV = ".csv"
)

// Ext returns the lowercased extension of path.
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// Load reads all records from the file at path, dispatching on its
// extension. A row with a field count other than 2 or with disallowed
// characters fails the whole load with a *FormatError.
func Load(path string) ([]Record, error) {
	switch Ext(path) {
	case ExtTxt:
		return loadTxt(path)
	case ExtCSV:
		return loadCSV(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExt, filepath.Ext(path))
	}
}

// Save serializes records to the file at path in the encoding matching its
// extension, one record per line, preserving order.
func Save(records []Record, path string) error {
	switch Ext(path) {
	case ExtTxt:
		return saveTxt(records, path)
	case ExtCSV:
		return saveCSV(records, path)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedExt, filepath.Ext(path))
	}
}

// Remove deletes the first record matching rec's identity from the file at
// path and rewrites the remaining records in their original order. The file
// is always re-read immediately before the rewrite so that a stale
// in-memory copy is never used as the basis for the new contents.
func Remove(path string, rec Record) error {
	records, err := Load(path)
	if err != nil {
		return err
	}

	idx := -1
	for i, r := range records {
		if r == rec {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, rec.Head)
	}

	rest := append(records[:idx:idx], records[idx+1:]...)
	return Save(rest, path)
}

// CheckFile verifies that path names an existing, non-empty file with a
// supported extension. It returns a descriptive error otherwise.
func CheckFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file %q does not exist", path)
	}
	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", path)
	}
	ext := filepath.Ext(path)
	if ext == "" {
		return fmt.Errorf("file %q has no extension", path)
	}
	if e := Ext(path); e != ExtTxt && e != ExtCSV {
		return fmt.Errorf("%w: %q", ErrUnsupportedExt, ext)
	}
	if info.Size() == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyFile, path)
	}
	return nil
}
