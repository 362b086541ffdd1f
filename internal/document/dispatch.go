package document

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Dispatch runs cmd to completion. Failures are logged and shown to the
// user; they never stop the loop. It reports whether the application should
// exit.
func (c *Controller) Dispatch(ctx context.Context, cmd Command) (quit bool) {
	var err error
	switch cmd := cmd.(type) {
	case CommandNew:
		err = c.NewDocument(ctx)
	case CommandOpen:
		err = c.OpenDocument(ctx, cmd.Path)
	case CommandImport:
		err = c.ImportFromURL(ctx)
	case CommandSave:
		if c.Document().Untitled() {
			err = c.SaveDocumentAs(ctx)
		} else {
			err = c.SaveDocument(ctx)
		}
	case CommandSaveAs:
		err = c.SaveDocumentAs(ctx)
	case CommandEdited:
		// typed before the surface showed the latest load
		if gen := c.generation(); cmd.Generation != gen {
			c.log.Debug("dropped stale edit", zap.Uint64("generation", cmd.Generation), zap.Uint64("current", gen))
			return false
		}
		c.MarkDirty()
	case CommandQuit:
		return c.OnQuitRequested(ctx)
	default:
		c.log.Warn("unknown command", zap.Any("command", cmd))
	}

	c.report(cmd, err)
	return false
}

func (c *Controller) report(cmd Command, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled) {
		c.log.Debug("command cancelled", zap.Stringer("command", cmd))
		return
	}
	c.log.Error("command failed", zap.Stringer("command", cmd), zap.Error(err))
	c.surface.Notify(Notice{Level: LevelError, Text: err.Error()})
}

// Run publishes the initial affordances and executes commands from mb in
// order until a quit is accepted, mb is closed or ctx is done.
func (c *Controller) Run(ctx context.Context, mb *Mailbox) error {
	c.publish()
	for {
		cmd, err := mb.Next(ctx)
		if err != nil {
			if errors.Is(err, ErrMailboxClosed) || ctx.Err() != nil {
				return nil
			}
			return err
		}
		c.log.Debug("command", zap.Stringer("command", cmd))
		if c.Dispatch(ctx, cmd) {
			return nil
		}
	}
}
