package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/blueprints/internal/document"
)

// modal is a dialog answering one host request. While a modal is open it
// receives every message the App does not handle itself.
type modal interface {
	ID() uint64
	Update(tea.Msg) (modal, tea.Cmd)
	View(width int) string
	Done() bool
	// Abort answers the request with err unless it was already answered.
	Abort(err error)
}

const (
	maxModalWidth = 72
	pickerHeight  = 12
)

func modalWidth(screen int) int {
	return max(min(maxModalWidth, screen-4), 20)
}

type confirmModal struct {
	id      uint64
	title   string
	message string
	reply   chan<- result[bool]
	styles  *Styles

	yes  bool
	done bool
}

func newConfirmModal(req confirmRequest, styles *Styles) *confirmModal {
	return &confirmModal{id: req.id, title: req.title, message: req.message, reply: req.reply, styles: styles}
}

func (m *confirmModal) ID() uint64 { return m.id }

func (m *confirmModal) Done() bool { return m.done }

func (m *confirmModal) answer(v bool) {
	if m.done {
		return
	}
	m.reply <- result[bool]{val: v}
	m.done = true
}

func (m *confirmModal) Abort(err error) {
	if m.done {
		return
	}
	m.reply <- result[bool]{err: err}
	m.done = true
}

func (m *confirmModal) Update(msg tea.Msg) (modal, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch k.String() {
	case "y", "Y":
		m.answer(true)
	case "n", "N", "esc":
		m.answer(false)
	case "enter":
		m.answer(m.yes)
	case "left", "right", "tab", "shift+tab", "h", "l":
		m.yes = !m.yes
	}
	return m, nil
}

func (m *confirmModal) View(width int) string {
	w := modalWidth(width)
	yes, no := m.styles.Button, m.styles.ButtonOn
	if m.yes {
		yes, no = m.styles.ButtonOn, m.styles.Button
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.ModalTitle.Render(m.title),
		"",
		lipgloss.NewStyle().Width(w-4).Render(m.message),
		"",
		yes.Render("Yes")+" "+no.Render("No"),
		m.styles.ModalHint.Render("y/n, enter to choose"),
	)
	return m.styles.Modal.Width(w - 2).Render(body)
}

type pickerModal struct {
	id     uint64
	reply  chan<- result[string]
	picker filepicker.Model
	styles *Styles
	exts   []string

	err  string
	done bool
}

func newPickerModal(req openPathRequest, dir string, styles *Styles) (*pickerModal, tea.Cmd) {
	fp := filepicker.New()
	fp.AllowedTypes = req.exts
	fp.CurrentDirectory = dir
	fp.AutoHeight = false
	fp.Height = pickerHeight
	fp.ShowPermissions = false
	fp.ShowSize = true

	m := &pickerModal{id: req.id, reply: req.reply, picker: fp, styles: styles, exts: req.exts}
	return m, fp.Init()
}

func (m *pickerModal) ID() uint64 { return m.id }

func (m *pickerModal) Done() bool { return m.done }

func (m *pickerModal) Abort(err error) {
	if m.done {
		return
	}
	m.reply <- result[string]{err: err}
	m.done = true
}

func (m *pickerModal) Update(msg tea.Msg) (modal, tea.Cmd) {
	// esc is one of the picker's "back" keys; here it closes the dialog.
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		m.Abort(document.ErrCancelled)
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.reply <- result[string]{val: path}
		m.done = true
		return m, nil
	}
	if ok, _ := m.picker.DidSelectDisabledFile(msg); ok {
		m.err = "only " + strings.Join(m.exts, ", ") + " files can be opened"
	}
	return m, cmd
}

func (m *pickerModal) View(width int) string {
	w := modalWidth(width)
	parts := []string{
		m.styles.ModalTitle.Render("Open a blueprint"),
		m.styles.ModalHint.Render(m.picker.CurrentDirectory),
		"",
		m.picker.View(),
	}
	if m.err != "" {
		parts = append(parts, m.styles.ModalError.Render(m.err))
	}
	parts = append(parts, m.styles.ModalHint.Render("enter to open, esc to cancel"))
	return m.styles.Modal.Width(w - 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

type promptModal struct {
	id       uint64
	title    string
	reply    chan<- result[string]
	input    textinput.Model
	validate func(string) error
	styles   *Styles

	err  string
	done bool
}

func newPromptModal(id uint64, title, value string, reply chan<- result[string], validate func(string) error, styles *Styles) (*promptModal, tea.Cmd) {
	input := textinput.New()
	input.Prompt = "> "
	input.SetValue(value)
	input.CursorEnd()
	cmd := input.Focus()

	return &promptModal{
		id:       id,
		title:    title,
		reply:    reply,
		input:    input,
		validate: validate,
		styles:   styles,
	}, tea.Batch(textinput.Blink, cmd)
}

func (m *promptModal) ID() uint64 { return m.id }

func (m *promptModal) Done() bool { return m.done }

func (m *promptModal) Abort(err error) {
	if m.done {
		return
	}
	m.reply <- result[string]{err: err}
	m.done = true
}

func (m *promptModal) Update(msg tea.Msg) (modal, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEsc:
			m.Abort(document.ErrCancelled)
			return m, nil
		case tea.KeyEnter:
			v := strings.TrimSpace(m.input.Value())
			if m.validate != nil {
				if err := m.validate(v); err != nil {
					m.err = err.Error()
					return m, nil
				}
			}
			m.reply <- result[string]{val: v}
			m.done = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.err = ""
	}
	return m, cmd
}

func (m *promptModal) View(width int) string {
	w := modalWidth(width)
	m.input.Width = w - 8

	parts := []string{
		m.styles.ModalTitle.Render(m.title),
		"",
		m.input.View(),
	}
	if m.err != "" {
		parts = append(parts, m.styles.ModalError.Render(m.err))
	}
	parts = append(parts, m.styles.ModalHint.Render("enter to confirm, esc to cancel"))
	return m.styles.Modal.Width(w - 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
