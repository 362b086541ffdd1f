// Package ui is the terminal surface of the blueprint editor: a command
// bar, the text editor, a status line and modal dialogs.
package ui

import (
	"context"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"go.uber.org/zap"

	"github.com/iw2rmb/blueprints/editor"
	"github.com/iw2rmb/blueprints/internal/document"
)

// Poster accepts commands without blocking.
type Poster interface {
	Post(document.Command) bool
}

// StatusSource reports the document shown in the status line.
type StatusSource interface {
	Document() document.Document
}

type Options struct {
	// Editor configures the text area. Text and OnChange are ignored.
	Editor editor.Config
	KeyMap KeyMap
	// Styles defaults to DefaultStyles.
	Styles *Styles
	// StartDir is where the open dialog starts. Defaults to the working
	// directory.
	StartDir string
	Logger   *zap.Logger
}

// App is the root Bubble Tea model.
type App struct {
	editor editor.Model
	keys   KeyMap
	styles *Styles
	log    *zap.Logger

	commands Poster
	status   StatusSource
	startDir string

	// generation of the last load shown; shared with the OnChange hook.
	generation *atomic.Uint64

	affordances document.Affordances
	notice      document.Notice
	modal       modal

	width, height int
	quitting      bool
}

var _ tea.Model = App{}

func New(commands Poster, status StatusSource, opts Options) App {
	if opts.KeyMap.Quit.Keys() == nil {
		opts.KeyMap = DefaultKeyMap()
	}
	if opts.Styles == nil {
		st := DefaultStyles()
		opts.Styles = &st
	}
	if opts.StartDir == "" {
		if wd, err := os.Getwd(); err == nil {
			opts.StartDir = wd
		}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	generation := new(atomic.Uint64)
	cfg := opts.Editor
	cfg.Text = ""
	cfg.OnChange = func(ev editor.ChangeEvent) {
		if ev.IsEdit() {
			commands.Post(document.CommandEdited{Generation: generation.Load()})
		}
	}

	return App{
		editor:     editor.New(cfg),
		keys:       opts.KeyMap,
		styles:     opts.Styles,
		log:        opts.Logger.Named("ui"),
		commands:   commands,
		status:     status,
		startDir:   opts.StartDir,
		generation: generation,
	}
}

func (a App) Init() tea.Cmd { return a.editor.Init() }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.editor = a.editor.SetSize(msg.Width, max(msg.Height-2, 0))
		return a, nil

	case loadMsg:
		a.generation.Store(msg.generation)
		a.editor = a.editor.SetText(msg.content)
		return a, nil
	case textRequest:
		msg.reply <- result[string]{val: a.editor.Text()}
		return a, nil
	case affordancesMsg:
		a.affordances = document.Affordances(msg)
		return a, nil
	case noticeMsg:
		a.notice = document.Notice(msg)
		return a, nil
	case quitMsg:
		a.quitting = true
		a.closeModal(context.Canceled)
		return a, tea.Quit

	case confirmRequest:
		return a.openModal(newConfirmModal(msg, a.styles), nil)
	case openPathRequest:
		m, cmd := newPickerModal(msg, a.startDir, a.styles)
		return a.openModal(m, cmd)
	case savePathRequest:
		m, cmd := newPromptModal(msg.id, "Save blueprint as", msg.defaultPath, msg.reply, validateSavePath, a.styles)
		return a.openModal(m, cmd)
	case urlRequest:
		m, cmd := newPromptModal(msg.id, "Import a blueprint from a URL", msg.defaultURL, msg.reply, validateURL, a.styles)
		return a.openModal(m, cmd)
	case dismissMsg:
		if a.modal != nil && a.modal.ID() == msg.id {
			a.closeModal(context.Canceled)
		}
		return a, nil
	}

	if a.modal != nil {
		var cmd tea.Cmd
		a.modal, cmd = a.modal.Update(msg)
		if a.modal.Done() {
			a.modal = nil
			a.editor = a.editor.Focus()
		}
		return a, cmd
	}

	if k, ok := msg.(tea.KeyMsg); ok && a.handleCommandKey(k) {
		return a, nil
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a App) openModal(m modal, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	a.closeModal(document.ErrCancelled)
	a.modal = m
	a.editor = a.editor.Blur()
	return a, cmd
}

func (a *App) closeModal(err error) {
	if a.modal == nil {
		return
	}
	a.modal.Abort(err)
	a.modal = nil
	a.editor = a.editor.Focus()
}

// handleCommandKey posts the command bound to k. Disabled commands are
// swallowed.
func (a App) handleCommandKey(k tea.KeyMsg) bool {
	var cmd document.Command
	switch {
	case key.Matches(k, a.keys.New):
		cmd = document.CommandNew{}
	case key.Matches(k, a.keys.Open):
		cmd = document.CommandOpen{}
	case key.Matches(k, a.keys.Import):
		cmd = document.CommandImport{}
	case key.Matches(k, a.keys.Save):
		if !a.saveEnabled() {
			return true
		}
		cmd = document.CommandSave{}
	case key.Matches(k, a.keys.SaveAs):
		if !a.affordances.SaveAs {
			return true
		}
		cmd = document.CommandSaveAs{}
	case key.Matches(k, a.keys.Quit):
		cmd = document.CommandQuit{}
	default:
		return false
	}

	a.log.Debug("command key", zap.String("key", k.String()), zap.Stringer("command", cmd))
	a.commands.Post(cmd)
	return true
}

// saveEnabled also accepts an untitled document with Save As available;
// the host turns that save into a save-as.
func (a App) saveEnabled() bool {
	if a.affordances.Save {
		return true
	}
	return a.affordances.SaveAs && a.document().Untitled()
}

func (a App) document() document.Document {
	if a.status == nil {
		return document.Document{}
	}
	return a.status.Document()
}

func (a App) View() string {
	if a.quitting {
		return ""
	}

	base := lipgloss.JoinVertical(lipgloss.Left,
		a.renderBar(),
		a.editor.View(),
		a.renderStatus(),
	)
	if a.modal == nil {
		return base
	}
	return overlay.Composite(a.modal.View(a.width), base, overlay.Center, overlay.Center, 0, 0)
}

type barItem struct {
	binding key.Binding
	enabled bool
}

func (a App) renderBar() string {
	items := []barItem{
		{a.keys.New, true},
		{a.keys.Open, true},
		{a.keys.Import, true},
		{a.keys.Save, a.affordances.Save},
		{a.keys.SaveAs, a.affordances.SaveAs},
		{a.keys.Quit, true},
	}

	parts := make([]string, 0, len(items))
	for _, it := range items {
		h := it.binding.Help()
		if it.enabled {
			parts = append(parts, a.styles.BarKey.Render(h.Key)+a.styles.BarItem.Render(" "+h.Desc))
		} else {
			parts = append(parts, a.styles.BarDisabled.Render(h.Key+" "+h.Desc))
		}
	}
	sep := a.styles.Bar.Render("  ")
	line := a.styles.Bar.Render(" ") + strings.Join(parts, sep)
	return a.styles.Bar.Width(max(a.width, lipgloss.Width(line))).Render(line)
}

func (a App) renderStatus() string {
	doc := a.document()

	name := doc.Path
	if name == "" {
		name = "untitled"
	}
	left := a.styles.Status.Render(name)
	if doc.Dirty {
		left += a.styles.StatusDirty.Render(" [modified]")
	}

	right := ""
	if a.notice.Text != "" {
		st := a.styles.Status
		if a.notice.Level == document.LevelError {
			st = a.styles.StatusError
		}
		right = st.Render(a.notice.Text)
	}

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", gap) + right
}
