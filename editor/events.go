package editor

import "github.com/iw2rmb/blueprints/buffer"

// ChangeEvent describes one effective buffer change.
type ChangeEvent struct {
	Version     uint64
	TextVersion uint64
	Source      buffer.ChangeSource
	TextChanged bool

	Cursor    buffer.Pos
	Selection buffer.SelectionState

	Text string
}

// IsEdit reports whether the event is a user edit of the text, as opposed to
// a cursor move or a wholesale load.
func (ev ChangeEvent) IsEdit() bool {
	return ev.TextChanged && ev.Source == buffer.ChangeSourceLocal
}

func buildChangeEvent(b *buffer.Buffer, ch buffer.Change) ChangeEvent {
	return ChangeEvent{
		Version:     b.Version(),
		TextVersion: b.TextVersion(),
		Source:      ch.Source,
		TextChanged: ch.TextChanged(),
		Cursor:      b.Cursor(),
		Selection:   ch.SelectionAfter,
		Text:        b.Text(),
	}
}
