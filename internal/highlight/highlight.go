// Package highlight colors JSON text for the editor.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/blueprints/editor"
	"github.com/iw2rmb/blueprints/internal/grapheme"
)

// Kind classifies a run of JSON text.
type Kind int

const (
	KindNone Kind = iota
	KindKey
	KindString
	KindNumber
	KindConstant
	KindPunctuation
)

func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindConstant:
		return "constant"
	case KindPunctuation:
		return "punctuation"
	default:
		return "none"
	}
}

// Span covers the grapheme columns [Start, End) of a line.
type Span struct {
	Start int
	End   int
	Kind  Kind
}

// Palette maps kinds to styles. Kinds without an entry stay plain.
type Palette map[Kind]lipgloss.Style

func DefaultPalette() Palette {
	return Palette{
		KindKey:         lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		KindString:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		KindNumber:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		KindConstant:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		KindPunctuation: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

var kindTokens = map[Kind]chroma.TokenType{
	KindKey:         chroma.NameTag,
	KindString:      chroma.LiteralString,
	KindNumber:      chroma.LiteralNumber,
	KindConstant:    chroma.KeywordConstant,
	KindPunctuation: chroma.Punctuation,
}

// PaletteFromChroma derives a palette from a named chroma style, falling
// back to DefaultPalette when the name is unknown.
func PaletteFromChroma(name string) Palette {
	st, ok := styles.Registry[name]
	if !ok || st == nil {
		return DefaultPalette()
	}

	p := Palette{}
	for kind, tt := range kindTokens {
		entry := st.Get(tt)
		if !entry.Colour.IsSet() {
			continue
		}
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(entry.Colour.String()))
		if entry.Bold == chroma.Yes {
			s = s.Bold(true)
		}
		p[kind] = s
	}
	return p
}

const maxCachedLines = 4096

// JSON is an editor.Highlighter for JSON documents. Lines are tokenised
// independently; JSON has no multi-line tokens.
type JSON struct {
	lexer   chroma.Lexer
	palette Palette
	cache   map[string][]editor.HighlightSpan
}

var _ editor.Highlighter = (*JSON)(nil)

func NewJSON(p Palette) *JSON {
	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	if p == nil {
		p = DefaultPalette()
	}
	return &JSON{
		lexer:   chroma.Coalesce(lexer),
		palette: p,
		cache:   make(map[string][]editor.HighlightSpan),
	}
}

func (h *JSON) HighlightLine(ctx editor.LineContext) ([]editor.HighlightSpan, error) {
	if spans, ok := h.cache[ctx.Text]; ok {
		return spans, nil
	}

	raw, err := h.Spans(ctx.Text)
	if err != nil {
		return nil, err
	}

	var out []editor.HighlightSpan
	for _, sp := range raw {
		st, ok := h.palette[sp.Kind]
		if !ok {
			continue
		}
		out = append(out, editor.HighlightSpan{
			StartGraphemeCol: sp.Start,
			EndGraphemeCol:   sp.End,
			Style:            st,
		})
	}

	if len(h.cache) >= maxCachedLines {
		clear(h.cache)
	}
	h.cache[ctx.Text] = out
	return out, nil
}

type token struct {
	start, end int
	kind       Kind
	value      string
}

// Spans classifies line. A string followed by a colon is a key. Adjacent
// tokens of the same kind are merged and unclassified text produces no span.
func (h *JSON) Spans(line string) ([]Span, error) {
	it, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return nil, err
	}

	lineLen := grapheme.Count(line)
	var (
		toks []token
		col  int
	)
	for tok := it(); tok != chroma.EOF; tok = it() {
		n := grapheme.Count(tok.Value)
		start, end := col, min(col+n, lineLen)
		col += n
		if start >= lineLen {
			break
		}
		toks = append(toks, token{start: start, end: end, kind: classify(tok), value: tok.Value})
	}

	for i := range toks {
		if toks[i].kind == KindString && followedByColon(toks[i+1:]) {
			toks[i].kind = KindKey
		}
	}

	var out []Span
	for _, t := range toks {
		if t.kind == KindNone || t.start == t.end {
			continue
		}
		if last := len(out) - 1; last >= 0 && out[last].Kind == t.kind && out[last].End == t.start {
			out[last].End = t.end
			continue
		}
		out = append(out, Span{Start: t.start, End: t.end, Kind: t.kind})
	}
	return out, nil
}

func followedByColon(rest []token) bool {
	for _, t := range rest {
		v := strings.TrimLeft(t.value, " \t")
		if v == "" {
			continue
		}
		return v[0] == ':'
	}
	return false
}

func classify(tok chroma.Token) Kind {
	tt := tok.Type
	switch {
	case tt == chroma.NameTag:
		return KindKey
	case tt.InSubCategory(chroma.LiteralString):
		return KindString
	case tt.InSubCategory(chroma.LiteralNumber):
		return KindNumber
	case tt.InCategory(chroma.Keyword):
		return KindConstant
	case tt == chroma.Punctuation:
		return KindPunctuation
	case tt == chroma.Error && strings.Trim(tok.Value, "{}[],:") == "":
		// a line lexed out of its enclosing object
		return KindPunctuation
	default:
		return KindNone
	}
}
