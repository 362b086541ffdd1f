// Package grapheme wraps uniseg and go-runewidth for the cluster-level
// operations the buffer and the editor share.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates clusters.
func Join(clusters []string) string {
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return clusters[0]
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// IsSpace reports whether every rune in cluster is Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// TabAdvance returns how many cells a tab occupies when it starts at cell col.
func TabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	if col < 0 {
		col = 0
	}
	return tabWidth - col%tabWidth
}

// CellWidth returns the terminal width of cluster when drawn at cell col.
// Zero-width clusters report 0; a tab expands to the next tab stop.
func CellWidth(cluster string, col, tabWidth int) int {
	if cluster == "\t" {
		return TabAdvance(col, tabWidth)
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		return 0
	}
	return w
}
