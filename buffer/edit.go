package buffer

import (
	"strings"

	"github.com/iw2rmb/blueprints/internal/grapheme"
)

// InsertText inserts s at the cursor, replacing the active selection.
// Carriage returns are normalized to '\n'.
func (b *Buffer) InsertText(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if s == "" {
		b.DeleteSelection()
		return
	}
	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.replace(r, s)
}

// InsertNewline inserts a line break at the cursor.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics. At the start of a line it joins
// the line with the previous one.
func (b *Buffer) DeleteBackward() {
	if r, ok := b.Selection(); ok {
		b.replace(r, "")
		return
	}
	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case col > 0:
		b.replace(Range{Start: Pos{Row: row, GraphemeCol: col - 1}, End: b.cursor}, "")
	case row > 0:
		b.replace(Range{Start: Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}, End: b.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics. At the end of a line it joins
// the next line onto it.
func (b *Buffer) DeleteForward() {
	if r, ok := b.Selection(); ok {
		b.replace(r, "")
		return
	}
	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case col < len(b.lines[row]):
		b.replace(Range{Start: b.cursor, End: Pos{Row: row, GraphemeCol: col + 1}}, "")
	case row < len(b.lines)-1:
		b.replace(Range{Start: b.cursor, End: Pos{Row: row + 1}}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	if r, ok := b.Selection(); ok {
		b.replace(r, "")
	}
}

// replace runs one local text replacement as a single change.
func (b *Buffer) replace(r Range, text string) {
	change := b.beginChange(ChangeSourceLocal)
	nextCursor, applied, changed := b.replaceRange(r, text)
	if !changed {
		return
	}
	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	change.addAppliedEdit(applied)
	b.commitChange(change)
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	deleted := textForLinesRange(b.lines, r)
	if deleted == text {
		return b.cursor, AppliedEdit{}, false
	}

	start, end := r.Start, r.End
	prefix := b.lines[start.Row][:start.GraphemeCol]
	suffix := b.lines[end.Row][end.GraphemeCol:]

	parts := strings.Split(text, "\n")
	repl := make([][]string, len(parts))
	for i, p := range parts {
		repl[i] = grapheme.Split(p)
	}
	last := len(repl) - 1
	nextCursor = Pos{Row: start.Row + last, GraphemeCol: len(repl[last])}
	if last == 0 {
		nextCursor.GraphemeCol += len(prefix)
	}

	repl[0] = append(append([]string(nil), prefix...), repl[0]...)
	repl[last] = append(repl[last], suffix...)

	out := make([][]string, 0, len(b.lines)-(end.Row-start.Row)+last)
	out = append(out, b.lines[:start.Row]...)
	out = append(out, repl...)
	out = append(out, b.lines[end.Row+1:]...)
	b.lines = out

	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: start, End: nextCursor},
		InsertText:  text,
		DeletedText: deleted,
	}
	return nextCursor, applied, true
}

func textForLinesRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return grapheme.Join(lines[r.Start.Row][r.Start.GraphemeCol:r.End.GraphemeCol])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		from, to := 0, len(lines[row])
		if row == r.Start.Row {
			from = r.Start.GraphemeCol
		} else {
			sb.WriteByte('\n')
		}
		if row == r.End.Row {
			to = r.End.GraphemeCol
		}
		sb.WriteString(grapheme.Join(lines[row][from:to]))
	}
	return sb.String()
}
