package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/iw2rmb/blueprints/internal/document"
)

// signalForwarder turns termination signals into quit commands so they pass
// the discard guard. Another signal while that quit is still unanswered
// forces the shutdown. SIGKILL cannot be caught and ends the process without
// a prompt.
type signalForwarder struct {
	mailbox *document.Mailbox
	force   context.CancelFunc
	log     *zap.Logger

	mu      sync.Mutex
	pending bool
}

func newSignalForwarder(mailbox *document.Mailbox, force context.CancelFunc, logger *zap.Logger) *signalForwarder {
	return &signalForwarder{mailbox: mailbox, force: force, log: logger}
}

func (f *signalForwarder) handle(sig os.Signal) {
	f.mu.Lock()
	forced := f.pending
	f.pending = true
	f.mu.Unlock()

	if forced {
		f.log.Warn("second signal forced shutdown", zap.Stringer("signal", sig))
		f.force()
		return
	}
	f.log.Info("received signal", zap.Stringer("signal", sig))
	f.mailbox.Post(document.CommandQuit{})
}

// declined re-arms the guard after the user chose to keep editing.
func (f *signalForwarder) declined() {
	f.mu.Lock()
	f.pending = false
	f.mu.Unlock()
}

func (f *signalForwarder) start() (stop func()) {
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-ch:
				f.handle(sig)
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}
