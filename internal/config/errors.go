package config

import "fmt"

// ErrorKind tags a configuration failure.
type ErrorKind string

const (
	// KindParse means the document could not be read or is not well-formed YAML.
	KindParse ErrorKind = "parse failure"
	// KindSchema means the document parsed but breaks a schema rule.
	KindSchema ErrorKind = "schema violation"
)

// Error describes why a work preferences or secrets document was rejected.
type Error struct {
	Kind     ErrorKind
	Path     string
	Key      string // offending key, empty for document-level failures
	Expected string // expected type or value set, when known
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s in %s", msg, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func parseError(path, message string, cause error) *Error {
	return &Error{Kind: KindParse, Path: path, Message: message, Cause: cause}
}

func schemaError(path, key, expected, message string) *Error {
	return &Error{Kind: KindSchema, Path: path, Key: key, Expected: expected, Message: message}
}
