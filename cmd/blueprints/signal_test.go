package main

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iw2rmb/blueprints/internal/document"
)

type forceCounter struct{ n int }

func (c *forceCounter) cancel() { c.n++ }

func TestSignalForwarder_FirstSignalPostsQuit(t *testing.T) {
	mb := document.NewMailbox()
	var fc forceCounter
	f := newSignalForwarder(mb, fc.cancel, zap.NewNop())

	f.handle(syscall.SIGTERM)
	assert.Equal(t, 1, mb.Len())
	assert.Equal(t, 0, fc.n)
}

func TestSignalForwarder_SecondSignalWhilePendingForces(t *testing.T) {
	mb := document.NewMailbox()
	var fc forceCounter
	f := newSignalForwarder(mb, fc.cancel, zap.NewNop())

	f.handle(syscall.SIGTERM)
	f.handle(syscall.SIGINT)
	assert.Equal(t, 1, mb.Len())
	assert.Equal(t, 1, fc.n)
}

func TestSignalForwarder_DeclinedQuitRearmsGuard(t *testing.T) {
	mb := document.NewMailbox()
	var fc forceCounter
	f := newSignalForwarder(mb, fc.cancel, zap.NewNop())

	f.handle(syscall.SIGTERM)
	f.declined()
	f.handle(syscall.SIGTERM)

	assert.Equal(t, 2, mb.Len())
	assert.Equal(t, 0, fc.n)
}

func TestSignalForwarder_ControllerDeclineRearmsGuard(t *testing.T) {
	mb := document.NewMailbox()
	var fc forceCounter
	f := newSignalForwarder(mb, fc.cancel, zap.NewNop())
	surface := &declineSurface{}
	ctrl := document.NewController(surface, document.WithQuitDeclined(f.declined))
	ctrl.MarkDirty()

	f.handle(syscall.SIGTERM)
	cmd, err := mb.Next(context.Background())
	require.NoError(t, err)
	assert.False(t, ctrl.Dispatch(context.Background(), cmd))

	f.handle(syscall.SIGTERM)
	assert.Equal(t, 0, fc.n)
	assert.Equal(t, 1, mb.Len())
	assert.Equal(t, 1, surface.confirms)
}

func TestSignalForwarder_ReceivesProcessSignal(t *testing.T) {
	mb := document.NewMailbox()
	var fc forceCounter
	stop := newSignalForwarder(mb, fc.cancel, zap.NewNop()).start()
	defer stop()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGHUP))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	cmd, err := mb.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, document.CommandQuit{}, cmd)
}

// declineSurface answers "no" to every confirmation.
type declineSurface struct{ confirms int }

func (s *declineSurface) Confirm(context.Context, string, string) (bool, error) {
	s.confirms++
	return false, nil
}

func (s *declineSurface) ChooseOpenPath(context.Context, []string) (string, error) {
	return "", document.ErrCancelled
}

func (s *declineSurface) ChooseSavePath(context.Context, string) (string, error) {
	return "", document.ErrCancelled
}

func (s *declineSurface) PromptURL(context.Context, string) (string, error) {
	return "", document.ErrCancelled
}

func (s *declineSurface) Text(context.Context) (string, error) { return "", nil }

func (s *declineSurface) Load(uint64, string) {}

func (s *declineSurface) SetAffordances(document.Affordances) {}

func (s *declineSurface) Notify(document.Notice) {}

func (s *declineSurface) Quit() {}
