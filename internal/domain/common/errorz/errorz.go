package errorz

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNothingGenerated = errors.New("generate preview first")
	ErrUnknownRecord    = errors.New("unknown record type")
)

// ValidationError reports user input that cannot be turned into a payload.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = strings.TrimSpace(e.Err.Error() + " " + msg)
	}
	if e.Field == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Field, msg)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Required builds the ValidationError for a blank required field.
func Required(field string) error {
	return &ValidationError{Field: field, Message: "is required"}
}

// Invalid builds a ValidationError with a formatted message.
func Invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds a ValidationError that matches err with errors.Is.
func Wrap(field string, err error, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...), Err: err}
}

// IOError wraps a failure to read a logo or write an output file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// LibraryError wraps a rejection from the encoding or imaging library.
// The message of the wrapped error is surfaced verbatim.
type LibraryError struct {
	Err error
}

func (e *LibraryError) Error() string { return e.Err.Error() }

func (e *LibraryError) Unwrap() error { return e.Err }

func Library(err error) error {
	if err == nil {
		return nil
	}
	return &LibraryError{Err: err}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsIO(err error) bool {
	var v *IOError
	return errors.As(err, &v)
}

func IsLibrary(err error) bool {
	var v *LibraryError
	return errors.As(err, &v)
}
