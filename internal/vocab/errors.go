package vocab

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the record to delete is no longer present in the
// source file.
var ErrNotFound = errors.New("record not found in file")

// ErrUnsupportedExt indicates a file extension other than .txt or .csv.
var ErrUnsupportedExt = errors.New("unsupported file extension")

// ErrEmptyFile indicates a zero-length source file.
var ErrEmptyFile = errors.New("file is empty")

// FormatError describes a malformed record. Any format error aborts the
// load of the entire source; callers never receive a partial record set.
type FormatError struct {
	Path string
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}
