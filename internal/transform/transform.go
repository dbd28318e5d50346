// Package transform implements the whole-file maintenance operations:
// shuffle, column swap, formatting, delimiter append and sort. Each
// operation reads one source file and writes the result next to it as
// <base>_<suffix><ext>, leaving the source untouched.
//
// Transforms work on raw lines and rows rather than parsed records, so
// they can be used to clean up files that would not yet pass the stricter
// record validation of the quiz loop.
package transform

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"langlearn/internal/vocab"
)

// OutputPath derives the destination path for a transform: the input path
// with _suffix inserted before the extension.
func OutputPath(path, suffix string) (string, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("file %q has no extension", path)
	}
	if e := vocab.Ext(path); e != vocab.ExtTxt && e != vocab.ExtCSV {
		return "", fmt.Errorf("%w: %q", vocab.ErrUnsupportedExt, ext)
	}
	base := strings.TrimSuffix(path, ext)
	return base + "_" + suffix + ext, nil
}

// Shuffle randomizes the order of lines (or rows) and writes the result to
// the _shuffled output file, returning its path.
func Shuffle(path string, rnd *rand.Rand) (string, error) {
	out, err := OutputPath(path, "shuffled")
	if err != nil {
		return "", err
	}

	if vocab.Ext(path) == vocab.ExtCSV {
		rows, err := readRows(path)
		if err != nil {
			return "", err
		}
		rnd.Shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
		return out, writeRows(rows, out)
	}

	lines, err := readLines(path)
	if err != nil {
		return "", err
	}
	rnd.Shuffle(len(lines), func(i, j int) { lines[i], lines[j] = lines[j], lines[i] })
	return out, writeLines(lines, out)
}

// SwapColumns exchanges the two columns of every line and writes the
// result to the _reversed output file. A line without exactly two columns
// fails the whole transform.
func SwapColumns(path string) (string, error) {
	out, err := OutputPath(path, "reversed")
	if err != nil {
		return "", err
	}

	if vocab.Ext(path) == vocab.ExtCSV {
		rows, err := readRows(path)
		if err != nil {
			return "", err
		}
		for i, row := range rows {
			if len(row) != 2 {
				return "", fmt.Errorf("expected 2 columns but found %d in row %q", len(row), strings.Join(row, ":"))
			}
			rows[i] = []string{strings.TrimSpace(row[1]), strings.TrimSpace(row[0])}
		}
		return out, writeRows(rows, out)
	}

	lines, err := readLines(path)
	if err != nil {
		return "", err
	}
	swapped := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ":")
		if len(parts) != 2 {
			return "", fmt.Errorf("expected 2 columns but found %d in line %q", len(parts), line)
		}
		swapped = append(swapped, fmt.Sprintf("%s: %s", strings.TrimSpace(parts[1]), strings.TrimSpace(parts[0])))
	}
	return out, writeLines(swapped, out)
}

// Format normalizes spacing after every ':' and ';', drops blank lines and
// removes duplicate lines (first occurrence wins), writing the result to
// the _formatted output file.
func Format(path string) (string, error) {
	out, err := OutputPath(path, "formatted")
	if err != nil {
		return "", err
	}

	if vocab.Ext(path) == vocab.ExtCSV {
		rows, err := readRows(path)
		if err != nil {
			return "", err
		}
		formatted := make([][]string, 0, len(rows))
		for _, row := range rows {
			cells := make([]string, len(row))
			blank := true
			for i, cell := range row {
				cells[i] = respace(cell)
				if strings.TrimSpace(cells[i]) != "" {
					blank = false
				}
			}
			if !blank {
				formatted = append(formatted, cells)
			}
		}
		return out, writeRows(formatted, out)
	}

	lines, err := readLines(path)
	if err != nil {
		return "", err
	}
	seen := make(map[string]struct{})
	formatted := make([]string, 0, len(lines))
	for _, line := range lines {
		line = respace(strings.TrimSpace(line))
		if line == "" {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		formatted = append(formatted, line)
	}
	return out, writeLines(formatted, out)
}

// AddDelimiter appends ": " to every line, preparing a bare word list for
// translations to be filled in. The input has no delimiter yet, so both
// encodings are treated as plain lines. Writes the _with_delimiter file.
func AddDelimiter(path string) (string, error) {
	out, err := OutputPath(path, "with_delimiter")
	if err != nil {
		return "", err
	}

	lines, err := readLines(path)
	if err != nil {
		return "", err
	}
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		result = append(result, line+": ")
	}
	return out, writeLines(result, out)
}

// Sort orders lines by their first column, case-insensitively, using
// Unicode collation. Writes the _sorted output file.
func Sort(path string) (string, error) {
	out, err := OutputPath(path, "sorted")
	if err != nil {
		return "", err
	}

	coll := collate.New(language.Und, collate.IgnoreCase)

	if vocab.Ext(path) == vocab.ExtCSV {
		rows, err := readRows(path)
		if err != nil {
			return "", err
		}
		sort.SliceStable(rows, func(i, j int) bool {
			return coll.CompareString(firstCell(rows[i]), firstCell(rows[j])) < 0
		})
		return out, writeRows(rows, out)
	}

	lines, err := readLines(path)
	if err != nil {
		return "", err
	}
	trimmed := make([]string, 0, len(lines))
	for _, line := range lines {
		if t := strings.TrimSpace(line); t != "" {
			trimmed = append(trimmed, t)
		}
	}
	coll.SortStrings(trimmed)
	return out, writeLines(trimmed, out)
}

// respace rewrites a string so every ':' and ';' is followed by exactly
// one space.
func respace(s string) string {
	parts := strings.Split(s, ":")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	s = strings.Join(parts, ": ")

	parts = strings.Split(s, ";")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, "; ")
}

func firstCell(row []string) string {
	if len(row) == 0 {
		return ""
	}
	return strings.TrimSpace(row[0])
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %q", vocab.ErrEmptyFile, path)
	}
	return lines, nil
}

func writeLines(lines []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ':'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	// Leading space would force quoting on the way back out.
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %q", vocab.ErrEmptyFile, path)
	}
	return rows, nil
}

func writeRows(rows [][]string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	w.Comma = ':'
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
