package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds the document commands. Editing keys belong to the editor.
type KeyMap struct {
	New    key.Binding
	Open   key.Binding
	Import key.Binding
	Save   key.Binding
	SaveAs key.Binding
	Quit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		New:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("^N", "New")),
		Open:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("^O", "Open")),
		Import: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("^U", "Import from URL")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^S", "Save")),
		// Few terminals report ctrl+shift+s.
		SaveAs: key.NewBinding(key.WithKeys("ctrl+w", "alt+s"), key.WithHelp("^W", "Save As")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("^Q", "Quit")),
	}
}
