package document

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrCancelled is returned when the user dismisses a dialog.
	ErrCancelled = errors.New("cancelled by user")
	// ErrNoPath is returned by a plain save of a document that has never
	// been saved.
	ErrNoPath = errors.New("document has no path")
)

type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error { return e.Err }

// ImportError covers every way an import can fail: transport, status and
// body.
type ImportError struct {
	URL string
	Err error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("failed to import %s: %v", e.URL, e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }
