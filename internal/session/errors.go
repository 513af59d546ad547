package session

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage is returned when a required argument is missing
	ErrUsage = errors.New("usage error")

	// ErrNotFound is returned when an input file does not exist
	ErrNotFound = errors.New("file not found")

	// ErrWrite is returned when a result file cannot be written
	ErrWrite = errors.New("write failed")
)

// UsageError reports a missing required argument.
type UsageError struct {
	Argument string // "1st" or "2nd"
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("Missing required %s argument", e.Argument)
}

func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// NotFoundError reports an input path that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("File %s not found", e.Path)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// WriteError reports the destination that could not be written.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("Could not save results to %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
