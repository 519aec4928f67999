package inventory

import (
	"encoding/json"
	"fmt"
)

// IOError reports an inaccessible directory or file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError reports a CSV file that could not be parsed. The whole file is
// discarded; loading continues with the remaining files.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// PredicateError reports search input that does not match column=value.
type PredicateError struct {
	Input  string
	Reason string
}

func (e *PredicateError) Error() string {
	return fmt.Sprintf("invalid predicate %q: %s", e.Input, e.Reason)
}

// FileError pairs a file skipped during load with the reason.
type FileError struct {
	File string
	Err  error
}

func (e FileError) Error() string {
	// The wrapped ParseError/IOError already names the file.
	return e.Err.Error()
}

func (e FileError) Unwrap() error {
	return e.Err
}

// MarshalJSON emits {"file": ..., "message": ...}.
func (e FileError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		File    string `json:"file"`
		Message string `json:"message"`
	}{File: e.File, Message: e.Err.Error()})
}
