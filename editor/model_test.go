package editor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestView_SnapshotFixedSize(t *testing.T) {
	m := New(Config{
		Text:         "{\n  \"a\": 1,\n  \"b\": 2\n}\n",
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(12, 3)

	got := trimLines(m.View())
	want := []string{
		"1 {",
		"2   \"a\": 1,",
		"3   \"b\": 2",
	}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestModel_FollowsCursorVertically(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = fmt.Sprintf("row%d", i)
	}
	m := New(Config{Text: strings.Join(lines, "\n")})
	m = m.SetSize(10, 3)

	for i := 0; i < 5; i++ {
		m = pressDown(m)
	}
	got := trimLines(m.View())
	if !strings.HasPrefix(got[len(got)-1], "row5") {
		t.Fatalf("cursor row not visible: %q", got)
	}
}

func TestModel_FollowsCursorHorizontally(t *testing.T) {
	m := New(Config{Text: "0123456789abcdef"})
	m = m.SetSize(5, 1)
	m = m.Blur().Focus()

	for i := 0; i < 12; i++ {
		m = pressRight(m)
	}
	m = m.Blur()
	got := trimLines(m.View())
	if got[0] != "89abc" {
		t.Fatalf("horizontal scroll: got %q, want %q", got[0], "89abc")
	}
}

func TestModel_SetTextResetsScroll(t *testing.T) {
	m := New(Config{Text: "a\nb\nc\nd\ne"})
	m = m.SetSize(5, 2)
	for i := 0; i < 4; i++ {
		m = pressDown(m)
	}
	m = m.SetText("x\ny\nz")
	m = m.Blur()

	got := trimLines(m.View())
	if got[0] != "x" {
		t.Fatalf("first line after SetText: got %q, want %q", got[0], "x")
	}
	if m.Text() != "x\ny\nz" {
		t.Fatalf("text after SetText: got %q", m.Text())
	}
}
