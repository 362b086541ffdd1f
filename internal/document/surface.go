package document

import (
	"context"
	"os"
)

// Surface is the display side as seen from the controller. Dialog methods
// block until the user answers and return ErrCancelled on dismissal.
type Surface interface {
	Confirm(ctx context.Context, title, message string) (bool, error)
	ChooseOpenPath(ctx context.Context, exts []string) (string, error)
	ChooseSavePath(ctx context.Context, defaultPath string) (string, error)
	PromptURL(ctx context.Context, defaultURL string) (string, error)
	// Text returns the live editor content.
	Text(ctx context.Context) (string, error)

	// Load replaces the displayed content. Later edits report generation.
	Load(generation uint64, content string)
	SetAffordances(Affordances)
	Notify(Notice)
	Quit()
}

type Store interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type Recents interface {
	Add(path string) error
}

// FileStore is a Store on the local file system. Writes overwrite in place.
type FileStore struct{}

func (FileStore) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func (FileStore) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

type nopRecents struct{}

func (nopRecents) Add(string) error { return nil }
