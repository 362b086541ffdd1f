package document

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// Command is a request from the surface. The set is closed.
type Command interface {
	isCommand()
	String() string
}

type (
	CommandNew  struct{}
	CommandOpen struct {
		// Path skips the file picker when set.
		Path string
	}
	CommandImport struct{}
	CommandSave   struct{}
	CommandSaveAs struct{}
	// CommandEdited reports a local content change made on top of the
	// content delivered by the Load call with the same Generation.
	CommandEdited struct{ Generation uint64 }
	CommandQuit   struct{}
)

func (CommandNew) isCommand()    {}
func (CommandOpen) isCommand()   {}
func (CommandImport) isCommand() {}
func (CommandSave) isCommand()   {}
func (CommandSaveAs) isCommand() {}
func (CommandEdited) isCommand() {}
func (CommandQuit) isCommand()   {}

func (CommandNew) String() string    { return "new" }
func (CommandOpen) String() string   { return "open" }
func (CommandImport) String() string { return "import" }
func (CommandSave) String() string   { return "save" }
func (CommandSaveAs) String() string { return "save-as" }
func (CommandEdited) String() string { return "edited" }
func (CommandQuit) String() string   { return "quit" }

var ErrMailboxClosed = errors.New("mailbox closed")

// Mailbox is an unbounded FIFO of commands. Post never blocks.
type Mailbox struct {
	mu     sync.Mutex
	queue  []Command
	closed bool
	ready  chan struct{}
}

func NewMailbox() *Mailbox {
	return &Mailbox{ready: make(chan struct{}, 1)}
}

// Post enqueues cmd. It returns false once the mailbox is closed.
func (m *Mailbox) Post(cmd Command) bool {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return false
	}
	m.queue = append(m.queue, cmd)
	m.mu.Unlock()

	select {
	case m.ready <- struct{}{}:
	default:
	}
	return true
}

// Next blocks until a command is available, the mailbox is closed and
// drained, or ctx is done.
func (m *Mailbox) Next(ctx context.Context) (Command, error) {
	for {
		m.mu.Lock()
		if len(m.queue) > 0 {
			cmd := m.queue[0]
			m.queue[0] = nil
			m.queue = m.queue[1:]
			m.mu.Unlock()
			return cmd, nil
		}
		closed := m.closed
		m.mu.Unlock()

		if closed {
			return nil, ErrMailboxClosed
		}

		select {
		case <-m.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Close stops accepting commands. Queued commands can still be drained.
func (m *Mailbox) Close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	select {
	case m.ready <- struct{}{}:
	default:
	}
}

func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}
