package buffer

import "testing"

func TestBuffer_InsertText_MultiLine(t *testing.T) {
	b := New("ab")
	b.SetCursor(Pos{Row: 0, GraphemeCol: 1})
	v := b.Version()

	b.InsertText("X\nY")
	if got, want := b.Text(), "aX\nYb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
}

func TestBuffer_InsertText_ReplacesSelection(t *testing.T) {
	b := New("hello")
	b.SetSelection(Range{Start: Pos{GraphemeCol: 1}, End: Pos{GraphemeCol: 4}}) // "ell"

	b.InsertText("i")
	if got, want := b.Text(), "hio"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
}

func TestBuffer_InsertText_NormalizesCRLF(t *testing.T) {
	b := New("")
	b.InsertText("{\r\n  \"a\": 1\r}")
	if got, want := b.Text(), "{\n  \"a\": 1\n}"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.LineCount(); got != 3 {
		t.Fatalf("line count=%d, want 3", got)
	}
}

func TestBuffer_InsertText_Graphemes(t *testing.T) {
	b := New("")
	b.InsertText("é")
	b.InsertText("テ")

	if got, want := b.Text(), "éテ"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_DeleteBackward_JoinsLinesAtSOL(t *testing.T) {
	b := New("ab\ncd")
	b.SetCursor(Pos{Row: 1})

	b.DeleteBackward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_DeleteBackward_AtOriginIsNoOp(t *testing.T) {
	b := New("ab")
	v, tv := b.Version(), b.TextVersion()

	b.DeleteBackward()
	if b.Version() != v || b.TextVersion() != tv {
		t.Fatalf("expected no version change at origin")
	}
}

func TestBuffer_DeleteForward_JoinsLinesAtEOL(t *testing.T) {
	b := New("ab\ncd")
	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})

	b.DeleteForward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	b.SetCursor(Pos{Row: 0, GraphemeCol: 4})
	v := b.Version()
	b.DeleteForward()
	if b.Version() != v {
		t.Fatalf("delete at doc end should be a no-op")
	}
}

func TestBuffer_DeleteSelection_MultiLine(t *testing.T) {
	b := New("{\n  \"a\": 1\n}")
	b.SetSelection(Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 2}})

	if got, want := b.SelectedText(), "\n  \"a\": 1\n"; got != want {
		t.Fatalf("selected=%q, want %q", got, want)
	}
	b.DeleteSelection()
	if got, want := b.Text(), "{}"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}
