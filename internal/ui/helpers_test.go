package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/blueprints/internal/document"
)

type recorder struct {
	mu   sync.Mutex
	cmds []document.Command
}

func (r *recorder) Post(c document.Command) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cmds = append(r.cmds, c)
	return true
}

func (r *recorder) take() []document.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.cmds
	r.cmds = nil
	return out
}

type staticStatus struct{ doc document.Document }

func (s *staticStatus) Document() document.Document { return s.doc }

func newTestApp() (App, *recorder, *staticStatus) {
	rec := &recorder{}
	st := &staticStatus{}
	a := New(rec, st, Options{StartDir: "."})
	m, _ := a.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	return m.(App), rec, st
}

func send(a App, msgs ...tea.Msg) (App, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var m tea.Model
		m, cmd = a.Update(msg)
		a = m.(App)
	}
	return a, cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func keyType(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }
