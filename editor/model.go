package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/blueprints/buffer"
	"github.com/iw2rmb/blueprints/internal/grapheme"
)

// Model is a Bubble Tea component that renders and edits a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	xOffset  int

	lastBufVersion uint64
	lastCursor     buffer.Pos
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Text returns the live buffer text.
func (m Model) Text() string { return m.buf.Text() }

// SetText replaces the whole document and scrolls back to the top.
// The resulting ChangeEvent carries buffer.ChangeSourceLoad.
func (m Model) SetText(text string) Model {
	m.buf.SetText(text)
	m.viewport.SetYOffset(0)
	m.xOffset = 0
	m.syncFromBuffer(false)
	m.rebuildContent()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)

	m.rebuildContent()
	if m.followCursor() {
		m.rebuildContent()
	}
	return m
}

func (m Model) Width() int { return m.viewport.Width }

func (m Model) Height() int { return m.viewport.Height }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		if m.followCursor() {
			m.rebuildContent()
		}
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		// Wheel scrolling must not snap back to the cursor.
		m.syncFromBuffer(false)
		m.rebuildContent()
		return m, cmd
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		m.syncFromBuffer(true)
		return m, cmd
	default:
		// Hosts may mutate the buffer directly between messages.
		m.syncFromBuffer(true)
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

// syncFromBuffer rebuilds the content and fires OnChange when the buffer
// moved since the last observation. With follow set, a moved cursor is
// scrolled into view.
func (m *Model) syncFromBuffer(follow bool) {
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return
	}
	cursorChanged := cur != m.lastCursor
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.rebuildContent()
	if follow && cursorChanged && m.followCursor() {
		m.rebuildContent()
	}

	if m.cfg.OnChange != nil {
		if ch, ok := m.buf.LastChange(); ok {
			m.cfg.OnChange(buildChangeEvent(m.buf, ch))
		}
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls the viewport so the cursor cell is visible. It
// reports whether either offset changed, which requires a re-render.
func (m *Model) followCursor() bool {
	cur := m.buf.Cursor()
	prevY, prevX := m.viewport.YOffset, m.xOffset

	if h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize(); h > 0 {
		y := m.viewport.YOffset
		switch {
		case cur.Row < y:
			m.viewport.SetYOffset(cur.Row)
		case cur.Row >= y+h:
			m.viewport.SetYOffset(cur.Row - h + 1)
		}
	}

	if w := m.contentWidth(); w > 0 {
		cell := m.cursorCell()
		switch {
		case cell < m.xOffset:
			m.xOffset = cell
		case cell >= m.xOffset+w:
			m.xOffset = cell - w + 1
		}
	}
	return m.viewport.YOffset != prevY || m.xOffset != prevX
}

// cursorCell returns the cell column of the cursor within its line.
func (m *Model) cursorCell() int {
	cur := m.buf.Cursor()
	cell := 0
	for i, g := range m.buf.LineGraphemes(cur.Row) {
		if i >= cur.GraphemeCol {
			break
		}
		cell += grapheme.CellWidth(g, cell, m.cfg.TabWidth)
	}
	return cell
}

func (m *Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

func (m *Model) contentWidth() int {
	if m.viewport.Width <= 0 {
		return 0
	}
	return max(m.viewport.Width-m.viewport.Style.GetHorizontalFrameSize()-m.gutterWidth(), 1)
}

func gutterDigits(lines int) int {
	d := 1
	for lines >= 10 {
		lines /= 10
		d++
	}
	return d
}
