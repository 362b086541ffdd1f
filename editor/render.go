package editor

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/blueprints/buffer"
	"github.com/iw2rmb/blueprints/internal/grapheme"
)

func (m *Model) renderContent() string {
	n := m.buf.LineCount()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()

	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(n)
	}

	left := m.xOffset
	right := math.MaxInt
	if w := m.contentWidth(); w > 0 {
		right = left + w
	}

	firstVisible, lastVisible := m.visibleRows(n)

	// Rows outside the viewport stay blank; they only hold the line count.
	out := make([]string, n)
	for row := firstVisible; row < lastVisible; row++ {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		clusters := m.buf.LineGraphemes(row)
		spans := m.highlightForLine(row, clusters)
		sb.WriteString(m.renderLine(row, clusters, cursor, sel, selOK, spans, left, right))
		out[row] = sb.String()
	}
	return strings.Join(out, "\n")
}

// visibleRows returns the half-open row range the viewport shows. Without a
// height every row counts as visible.
func (m *Model) visibleRows(n int) (int, int) {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return 0, n
	}
	start := clampInt(m.viewport.YOffset, 0, n)
	return start, min(start+h, n)
}

func (m *Model) highlightForLine(row int, clusters []string) []HighlightSpan {
	if m.cfg.Highlighter == nil {
		return nil
	}
	spans, err := m.cfg.Highlighter.HighlightLine(LineContext{Row: row, Text: grapheme.Join(clusters)})
	if err != nil {
		return nil
	}
	return normalizeHighlightSpans(spans, len(clusters))
}

// renderLine draws the cells [left, right) of one line. Wide clusters that
// straddle either edge are replaced by blanks to keep columns aligned.
func (m *Model) renderLine(
	row int,
	clusters []string,
	cursor buffer.Pos,
	sel buffer.Range,
	selOK bool,
	spans []HighlightSpan,
	left, right int,
) string {
	st := m.cfg.Style
	hasCursor := m.focused && row == cursor.Row
	selStart, selEnd, hasSel := selectionColsForRow(sel, selOK, row, len(clusters))

	var sb strings.Builder
	cell := 0
	spanIdx := 0
	for col, g := range clusters {
		w := grapheme.CellWidth(g, cell, m.cfg.TabWidth)
		start := cell
		cell += w
		if cell <= left {
			continue
		}
		if start >= right {
			break
		}

		text := g
		if g == "\t" {
			text = strings.Repeat(" ", w)
		}
		if start < left || cell > right {
			text = strings.Repeat(" ", min(cell, right)-max(start, left))
		}

		for spanIdx < len(spans) && spans[spanIdx].EndGraphemeCol <= col {
			spanIdx++
		}

		var style lipgloss.Style
		switch {
		case hasCursor && col == cursor.GraphemeCol:
			style = st.Cursor
		case hasSel && col >= selStart && col < selEnd:
			style = st.Selection
		case spanIdx < len(spans) && spans[spanIdx].StartGraphemeCol <= col:
			style = spans[spanIdx].Style.Inherit(st.Text)
		default:
			style = st.Text
		}
		sb.WriteString(style.Render(text))
	}

	// A cursor at end of line is drawn as a one-cell placeholder.
	if hasCursor && cursor.GraphemeCol >= len(clusters) && cell >= left && cell < right {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has bool) {
	if !ok || row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = sel.Start.GraphemeCol
	}
	if row == sel.End.Row {
		end = sel.End.GraphemeCol
	}
	return start, end, start < end
}
