// Package clipboard connects the editor to the system clipboard.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"

	"github.com/iw2rmb/blueprints/editor"
)

var (
	_ editor.Clipboard = System{}
	_ editor.Clipboard = (*Memory)(nil)
)

// System uses the OS clipboard.
type System struct{}

func (System) ReadText() (string, error) { return clipboard.ReadAll() }

func (System) WriteText(s string) error { return clipboard.WriteAll(s) }

// Memory is a process-local clipboard used when no system clipboard
// utility is available.
type Memory struct {
	mu   sync.Mutex
	text string
}

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *Memory) WriteText(s string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = s
	return nil
}

// Default returns System when the platform supports it and a fresh Memory
// clipboard otherwise.
func Default() editor.Clipboard {
	if clipboard.Unsupported {
		return &Memory{}
	}
	return System{}
}
