package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Bar         lipgloss.Style
	BarKey      lipgloss.Style
	BarItem     lipgloss.Style
	BarDisabled lipgloss.Style

	Status      lipgloss.Style
	StatusDirty lipgloss.Style
	StatusError lipgloss.Style

	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
	ModalHint  lipgloss.Style
	ModalError lipgloss.Style
	Button     lipgloss.Style
	ButtonOn   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Bar:         lipgloss.NewStyle().Background(lipgloss.Color("236")),
		BarKey:      lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("12")).Bold(true),
		BarItem:     lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252")),
		BarDisabled: lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("240")),

		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatusDirty: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1),
		ModalTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")),
		ModalHint:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ModalError: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Button:     lipgloss.NewStyle().Padding(0, 1),
		ButtonOn:   lipgloss.NewStyle().Padding(0, 1).Reverse(true),
	}
}
