package rendering

import "fmt"

// RenderError reports a page that could not be produced. Title is the
// document title, which may be empty.
type RenderError struct {
	Title  string
	Reason string
	Cause  error
}

func (e *RenderError) Error() string {
	msg := "render " + e.Reason
	if e.Title != "" {
		msg = fmt.Sprintf("render %q: %s", e.Title, e.Reason)
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
