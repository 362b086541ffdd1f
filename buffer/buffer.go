package buffer

import (
	"strings"

	"github.com/iw2rmb/blueprints/internal/grapheme"
)

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer holds the document text, cursor and selection.
//
// Version advances on every observable state change (text, cursor or
// selection). TextVersion advances only when the text itself changes.
type Buffer struct {
	lines       [][]string
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	lastChange    Change
	hasLastChange bool
}

func New(text string) *Buffer {
	return &Buffer{lines: splitLines(text)}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, g := range line {
			sb.WriteString(g)
		}
	}
	return sb.String()
}

// SetText replaces the whole document. The cursor returns to the origin and
// the selection is cleared. The resulting change is tagged ChangeSourceLoad
// so hosts can tell a wholesale load apart from a user edit.
func (b *Buffer) SetText(text string) {
	change := b.beginChange(ChangeSourceLoad)
	before := b.Text()

	b.lines = splitLines(text)
	b.cursor = Pos{}
	b.sel = selectionState{}

	if before == text && change.cursorBefore == b.cursor && !change.selectionBefore.Active {
		return
	}
	b.version++
	if before != text {
		b.textVersion++
		change.addAppliedEdit(AppliedEdit{
			RangeBefore: fullDocumentRange(before),
			RangeAfter:  fullDocumentRange(text),
			InsertText:  text,
			DeletedText: before,
		})
	}
	b.commitChange(change)
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

// LineGraphemes returns a copy of the clusters of row.
func (b *Buffer) LineGraphemes(row int) []string {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return append([]string(nil), b.lines[row]...)
}

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor && !b.sel.active {
		return
	}
	change := b.beginChange(ChangeSourceLocal)
	b.cursor = next
	b.sel = selectionState{}
	b.version++
	b.commitChange(change)
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SetSelection selects r and moves the cursor to r.End.
func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if clamped.Start == clamped.End {
		next = selectionState{}
	}
	if selectionStateEqual(b.sel, next) && b.cursor == clamped.End {
		return
	}

	change := b.beginChange(ChangeSourceLocal)
	b.sel = next
	b.cursor = clamped.End
	b.version++
	b.commitChange(change)
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	change := b.beginChange(ChangeSourceLocal)
	b.sel = selectionState{}
	b.version++
	b.commitChange(change)
}

// SelectedText returns the text of the active selection.
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return textForLinesRange(b.lines, r)
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	return lines
}
