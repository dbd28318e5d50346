package vocab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// csvDelimiter separates the headword and translation fields in the
// table encoding.
const csvDelimiter = ':'

// loadCSV reads records from a ':'-delimited table file.
func loadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = csvDelimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var records []Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &FormatError{Path: path, Line: perr.Line, Msg: perr.Err.Error()}
			}
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		line, _ := r.FieldPos(0)
		if len(row) != 2 {
			return nil, &FormatError{
				Path: path,
				Line: line,
				Msg:  fmt.Sprintf("expected 2 columns but found %d in row %q", len(row), strings.Join(row, string(csvDelimiter))),
			}
		}

		rec := Record{
			Head:         strings.TrimSpace(row[0]),
			Translations: strings.TrimSpace(row[1]),
		}
		if !rec.Valid() {
			return nil, &FormatError{
				Path: path,
				Line: line,
				Msg:  fmt.Sprintf("invalid characters in row %q", strings.Join(row, string(csvDelimiter))),
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// saveCSV writes records as ':'-delimited rows. No leading space is added
// to the translation field: csv.Writer would quote a field starting with a
// space, and the table encoding carries its spacing inside the field anyway.
func saveCSV(records []Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	w.Comma = csvDelimiter
	for _, r := range records {
		if err := w.Write([]string{r.Head, r.Translations}); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
