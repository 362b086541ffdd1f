package buffer

import "github.com/iw2rmb/blueprints/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
	MovePage
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Count  int  // rows per step for MovePage; 0 means 1
	Extend bool // extend the selection instead of clearing it
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	nextCursor := b.clampPos(b.moveCursor(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	}

	if prevCursor == nextCursor && selectionStateEqual(prevSel, nextSel) {
		return
	}

	change := b.beginChange(ChangeSourceLocal)
	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
	b.commitChange(change)
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveRows(p, m.Dir, 1)
	case MovePage:
		return b.moveRows(p, m.Dir, max(m.Count, 1))
	case MoveDoc:
		return b.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (b *Buffer) moveGrapheme(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.GraphemeCol
	lastRow := len(b.lines) - 1

	switch dir {
	case DirLeft:
		if col > 0 {
			return Pos{Row: row, GraphemeCol: col - 1}
		}
		if row == 0 {
			return p
		}
		return Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}
	case DirRight:
		if col < len(b.lines[row]) {
			return Pos{Row: row, GraphemeCol: col + 1}
		}
		if row == lastRow {
			return p
		}
		return Pos{Row: row + 1}
	default:
		return b.moveRows(p, dir, 1)
	}
}

func (b *Buffer) moveRows(p Pos, dir MoveDir, n int) Pos {
	row, col := p.Row, p.GraphemeCol
	switch dir {
	case DirHome:
		return Pos{Row: row}
	case DirEnd:
		return Pos{Row: row, GraphemeCol: len(b.lines[row])}
	case DirUp:
		row = max(row-n, 0)
	case DirDown:
		row = min(row+n, len(b.lines)-1)
	default:
		return p
	}
	return Pos{Row: row, GraphemeCol: min(col, len(b.lines[row]))}
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	line := b.lines[p.Row]
	switch dir {
	case DirLeft:
		if p.GraphemeCol == 0 {
			return b.moveGrapheme(p, DirLeft)
		}
		return Pos{Row: p.Row, GraphemeCol: prevWordBoundary(line, p.GraphemeCol)}
	case DirRight:
		if p.GraphemeCol == len(line) {
			return b.moveGrapheme(p, DirRight)
		}
		return Pos{Row: p.Row, GraphemeCol: nextWordBoundary(line, p.GraphemeCol)}
	default:
		return b.moveRows(p, dir, 1)
	}
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	lastRow := len(b.lines) - 1
	switch dir {
	case DirHome, DirUp:
		return Pos{}
	case DirEnd, DirDown:
		return Pos{Row: lastRow, GraphemeCol: len(b.lines[lastRow])}
	default:
		return p
	}
}

// Word boundaries skip whitespace, then non-whitespace, within one line.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
