package ui

import (
	"context"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/blueprints/internal/document"
)

var _ document.Surface = (*Bridge)(nil)

// Bridge implements document.Surface for the host goroutine by sending
// requests into the Bubble Tea program and waiting for the reply.
type Bridge struct {
	mu   sync.RWMutex
	send func(tea.Msg)

	lastID atomic.Uint64
}

func NewBridge() *Bridge { return &Bridge{} }

// Attach routes requests to p.
func (b *Bridge) Attach(p *tea.Program) { b.SetSend(p.Send) }

func (b *Bridge) SetSend(send func(tea.Msg)) {
	b.mu.Lock()
	b.send = send
	b.mu.Unlock()
}

func (b *Bridge) post(msg tea.Msg) {
	b.mu.RLock()
	send := b.send
	b.mu.RUnlock()
	if send != nil {
		send(msg)
	}
}

func (b *Bridge) nextID() uint64 { return b.lastID.Add(1) }

// await waits for a reply. When ctx ends first the open modal is dismissed.
func await[T any](ctx context.Context, b *Bridge, id uint64, reply <-chan result[T]) (T, error) {
	select {
	case r := <-reply:
		return r.val, r.err
	case <-ctx.Done():
		if id != 0 {
			b.post(dismissMsg{id: id})
		}
		var zero T
		return zero, ctx.Err()
	}
}

func (b *Bridge) Confirm(ctx context.Context, title, message string) (bool, error) {
	id, reply := b.nextID(), make(chan result[bool], 1)
	b.post(confirmRequest{id: id, title: title, message: message, reply: reply})
	return await(ctx, b, id, reply)
}

func (b *Bridge) ChooseOpenPath(ctx context.Context, exts []string) (string, error) {
	id, reply := b.nextID(), make(chan result[string], 1)
	b.post(openPathRequest{id: id, exts: exts, reply: reply})
	return await(ctx, b, id, reply)
}

func (b *Bridge) ChooseSavePath(ctx context.Context, defaultPath string) (string, error) {
	id, reply := b.nextID(), make(chan result[string], 1)
	b.post(savePathRequest{id: id, defaultPath: defaultPath, reply: reply})
	return await(ctx, b, id, reply)
}

func (b *Bridge) PromptURL(ctx context.Context, defaultURL string) (string, error) {
	id, reply := b.nextID(), make(chan result[string], 1)
	b.post(urlRequest{id: id, defaultURL: defaultURL, reply: reply})
	return await(ctx, b, id, reply)
}

func (b *Bridge) Text(ctx context.Context) (string, error) {
	reply := make(chan result[string], 1)
	b.post(textRequest{reply: reply})
	return await(ctx, b, 0, reply)
}

func (b *Bridge) Load(generation uint64, content string) {
	b.post(loadMsg{generation: generation, content: content})
}

func (b *Bridge) SetAffordances(a document.Affordances) { b.post(affordancesMsg(a)) }

func (b *Bridge) Notify(n document.Notice) { b.post(noticeMsg(n)) }

func (b *Bridge) Quit() { b.post(quitMsg{}) }
