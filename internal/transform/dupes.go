package transform

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Occurrence locates one appearance of a first-column value.
type Occurrence struct {
	File string
	Line int
}

// Duplicate is a first-column value that appears more than once across the
// scanned files.
type Duplicate struct {
	Value     string
	Locations []Occurrence
}

// ScanDuplicates walks the .txt files in dir and reports every first-column
// value appearing on more than one line. Results are ordered by value so
// repeated scans produce identical reports.
func ScanDuplicates(dir string) ([]Duplicate, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("directory %q does not exist", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	occurrences := make(map[string][]Occurrence)
	scanned := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		scanned++
		if err := scanFile(dir, entry.Name(), occurrences); err != nil {
			return nil, err
		}
	}
	if scanned == 0 {
		return nil, fmt.Errorf("no .txt files found in %q", dir)
	}

	var dupes []Duplicate
	for value, locs := range occurrences {
		if len(locs) > 1 {
			dupes = append(dupes, Duplicate{Value: value, Locations: locs})
		}
	}
	sort.Slice(dupes, func(i, j int) bool { return dupes[i].Value < dupes[j].Value })
	return dupes, nil
}

// RemoveDuplicates rewrites every .txt file in dir so that only the first
// line for each first-column value within a file is kept. Values repeated
// across different files keep one line per file. Returns the removed lines.
func RemoveDuplicates(dir string) ([]string, error) {
	// Scan first so the caller gets the same existence and emptiness
	// errors as the report path.
	if _, err := ScanDuplicates(dir); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var removed []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		dropped, err := dedupeFile(path)
		if err != nil {
			return removed, err
		}
		removed = append(removed, dropped...)
	}
	return removed, nil
}

// firstColumn extracts the value the duplicate scan keys on. Lines may use
// '|' or ':' as the column separator; a line with neither is a bare word.
func firstColumn(line string) string {
	line = strings.TrimSpace(line)
	switch {
	case strings.Contains(line, "|"):
		line = line[:strings.Index(line, "|")]
	case strings.Contains(line, ":"):
		line = line[:strings.Index(line, ":")]
	}
	return strings.TrimSpace(line)
}

func scanFile(dir, name string, occurrences map[string][]Occurrence) error {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		value := firstColumn(sc.Text())
		if value == "" {
			continue
		}
		occurrences[value] = append(occurrences[value], Occurrence{File: name, Line: line})
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

func dedupeFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	seen := make(map[string]struct{})
	var kept, dropped []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		value := firstColumn(line)
		if value == "" {
			kept = append(kept, line)
			continue
		}
		if _, dup := seen[value]; dup {
			dropped = append(dropped, strings.TrimSpace(line))
			continue
		}
		seen[value] = struct{}{}
		kept = append(kept, line)
	}
	if err := sc.Err(); err != nil {
		f.Close()
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	f.Close()

	if len(dropped) == 0 {
		return nil, nil
	}
	return dropped, writeLines(kept, path)
}
