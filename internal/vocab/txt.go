package vocab

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// loadTxt reads records from a plain text file with one "headword:
// translations" pair per line. Blank lines are skipped.
func loadTxt(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var records []Record
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		parts := strings.Split(text, ":")
		if len(parts) != 2 {
			return nil, &FormatError{
				Path: path,
				Line: line,
				Msg:  fmt.Sprintf("expected 2 fields but found %d in %q", len(parts), text),
			}
		}

		rec := Record{
			Head:         strings.TrimSpace(parts[0]),
			Translations: strings.TrimSpace(parts[1]),
		}
		if !rec.Valid() {
			return nil, &FormatError{
				Path: path,
				Line: line,
				Msg:  fmt.Sprintf("invalid characters in %q", text),
			}
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return records, nil
}

// saveTxt writes records as "headword: translations" lines.
func saveTxt(records []Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, r := range records {
		fmt.Fprintf(w, "%s: %s\n", r.Head, r.Translations)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
