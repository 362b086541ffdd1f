package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type stubClipboard struct {
	text     string
	readErr  error
	writeErr error
	writes   int
}

func (c *stubClipboard) ReadText() (string, error) { return c.text, c.readErr }

func (c *stubClipboard) WriteText(s string) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.writes++
	c.text = s
	return nil
}

type stubHighlighter struct {
	fn func(ctx LineContext) ([]HighlightSpan, error)
}

func (h *stubHighlighter) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	return h.fn(ctx)
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func trimLines(view string) []string {
	lines := strings.Split(view, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}
