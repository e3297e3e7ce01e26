package domain

import (
	"errors"
	"fmt"
)

// ErrNoFile is returned when a request carries no file or an empty filename.
var ErrNoFile = errors.New("no file provided")

// InvalidFileTypeError reports an upload whose extension is not in the
// allowed set. It is a client error and is never retried.
type InvalidFileTypeError struct {
	Filename string
}

func (e *InvalidFileTypeError) Error() string {
	if e.Filename == "" {
		return "invalid file type"
	}
	return fmt.Sprintf("invalid file type: %q", e.Filename)
}

// ParseError wraps a failure to decode spreadsheet content into a Sheet.
type ParseError struct {
	Filename string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Filename, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a record that lacks a required column value.
// Row is the 1-based spreadsheet row, or 0 when the whole column is absent.
type MissingFieldError struct {
	Field string
	Row   int
}

func (e *MissingFieldError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("missing required column %q", e.Field)
	}
	return fmt.Sprintf("row %d: missing value for %q", e.Row, e.Field)
}

// TypeMismatchError reports a required column whose value is not numeric.
type TypeMismatchError struct {
	Field string
	Row   int
	Value any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("row %d: %q is not numeric (got %v)", e.Row, e.Field, e.Value)
}

// InvalidArgumentError reports a bad caller-supplied parameter.
type InvalidArgumentError struct {
	Name   string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Name, e.Reason)
}

// IsClientError reports whether err is caused by the caller's input rather
// than by the file contents or the server.
func IsClientError(err error) bool {
	var (
		fileType *InvalidFileTypeError
		arg      *InvalidArgumentError
	)
	return errors.Is(err, ErrNoFile) || errors.As(err, &fileType) || errors.As(err, &arg)
}
