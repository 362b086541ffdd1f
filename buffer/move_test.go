package buffer

import "testing"

func TestMove_GraphemeWrapsAcrossLines(t *testing.T) {
	b := New("ab\ncd")
	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got, want := b.Cursor(), (Pos{Row: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestMove_VerticalClampsColumn(t *testing.T) {
	b := New("long line\nab\nlonger line")
	b.SetCursor(Pos{Row: 0, GraphemeCol: 8})

	b.Move(Move{Unit: MoveLine, Dir: DirDown})
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestMove_Word(t *testing.T) {
	b := New(`"name": "wp"`)
	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got, want := b.Cursor(), (Pos{GraphemeCol: 7}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got, want := b.Cursor(), (Pos{GraphemeCol: 12}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirLeft})
	if got, want := b.Cursor(), (Pos{GraphemeCol: 8}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestMove_PageAndDoc(t *testing.T) {
	b := New("0\n1\n2\n3\n4\n5")

	b.Move(Move{Unit: MovePage, Dir: DirDown, Count: 4})
	if got, want := b.Cursor(), (Pos{Row: 4}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MovePage, Dir: DirDown, Count: 4})
	if got, want := b.Cursor(), (Pos{Row: 5}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveDoc, Dir: DirHome})
	if got, want := b.Cursor(), (Pos{}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	if got, want := b.Cursor(), (Pos{Row: 5, GraphemeCol: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestMove_ExtendBuildsSelection(t *testing.T) {
	b := New("abc")
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected active selection")
	}
	if want := (Range{End: Pos{GraphemeCol: 2}}); r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if _, ok := b.Selection(); ok {
		t.Fatalf("plain move should clear selection")
	}
}
