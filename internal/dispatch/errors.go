package dispatch

import (
	"errors"
	"fmt"
)

// ErrNoJobURL is returned when a job flow has no job description URL.
var ErrNoJobURL = errors.New("no job description URL provided")

// ErrUnsafeSubdir is the cause of a WriteError when the facade suggests an
// output folder that would leave the output directory.
var ErrUnsafeSubdir = errors.New("suggested folder is not inside the output directory")

// DecodeError means the facade returned a document that is not valid base64.
type DecodeError struct {
	Action string
	Cause  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s document: %v", e.Action, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// WriteError means the decoded document could not be saved.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
