package editor

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// HighlightSpan styles the grapheme columns [StartGraphemeCol, EndGraphemeCol)
// of one line.
type HighlightSpan struct {
	StartGraphemeCol int
	EndGraphemeCol   int
	Style            lipgloss.Style
}

type LineContext struct {
	Row  int
	Text string
}

// Highlighter styles lines on demand. It is only asked about visible rows.
// A returned error drops highlighting for that line.
type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

// normalizeHighlightSpans clamps spans into the line, drops empty ones and
// resolves overlaps by keeping the earlier span.
func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	lineLen = max(lineLen, 0)

	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.StartGraphemeCol, 0, lineLen)
		end := clampInt(sp.EndGraphemeCol, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, HighlightSpan{StartGraphemeCol: start, EndGraphemeCol: end, Style: sp.Style})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartGraphemeCol < out[j].StartGraphemeCol
	})

	merged := out[:0]
	for _, sp := range out {
		if n := len(merged); n > 0 && sp.StartGraphemeCol < merged[n-1].EndGraphemeCol {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
