package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	TabWidth     int // default: 4
	Style        Style

	KeyMap   KeyMap
	ReadOnly bool

	// Optional integrations.
	Clipboard   Clipboard
	Highlighter Highlighter

	// OnChange is called once per effective buffer change observed by the
	// Model, including cursor moves and loads through SetText.
	OnChange func(ChangeEvent)
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if isZeroKeyMap(c.KeyMap) {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
