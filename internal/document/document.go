// Package document owns the lifecycle of the blueprint being edited: its
// path, its dirty flag and the decision whether it may be discarded.
package document

// Document is the blueprint currently open. Content is the text as of the
// last load or save; edits in between live in the surface.
type Document struct {
	Path    string
	Content string
	Dirty   bool
}

// Untitled reports whether the document has never been saved.
func (d Document) Untitled() bool { return d.Path == "" }

// Affordances tells the surface which save commands are enabled.
type Affordances struct {
	Save   bool
	SaveAs bool
}

// Action names an operation that needs the discard guard.
type Action string

const (
	ActionQuit   Action = "quit"
	ActionOpen   Action = "open a blueprint"
	ActionImport Action = "import a blueprint from a URL"
	ActionNew    Action = "create a new blueprint"
)

const discardTitle = "Discard unsaved changes?"

func discardMessage(a Action) string {
	return "You have unsaved changes. Are you sure you want to " + string(a) + "?"
}

type Level int

const (
	LevelInfo Level = iota
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "error"
	}
	return "info"
}

// Notice is a one-line message for the user.
type Notice struct {
	Level Level
	Text  string
}
