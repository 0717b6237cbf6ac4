package files

import (
	"fmt"
	"strings"
)

// NotFoundKind tags which part of the data folder is absent.
type NotFoundKind string

const (
	// KindDirectoryMissing means the data folder itself does not exist.
	KindDirectoryMissing NotFoundKind = "directory missing"
	// KindFilesMissing means one or more required files are absent.
	KindFilesMissing NotFoundKind = "files missing"
	// KindFileMissing means a single resolved file disappeared.
	KindFileMissing NotFoundKind = "file missing"
)

// NotFoundError reports missing inputs in the data folder.
type NotFoundError struct {
	Kind    NotFoundKind
	Path    string
	Missing []string // file names, in the order they are required
}

func (e *NotFoundError) Error() string {
	switch e.Kind {
	case KindDirectoryMissing:
		return fmt.Sprintf("data folder not found: %s", e.Path)
	case KindFilesMissing:
		return fmt.Sprintf("missing files in data folder %s: %s", e.Path, strings.Join(e.Missing, ", "))
	default:
		return fmt.Sprintf("file not found: %s", e.Path)
	}
}
