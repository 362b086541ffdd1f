package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/iw2rmb/blueprints"
	"github.com/iw2rmb/blueprints/editor"
	"github.com/iw2rmb/blueprints/internal/clipboard"
	"github.com/iw2rmb/blueprints/internal/config"
	"github.com/iw2rmb/blueprints/internal/document"
	"github.com/iw2rmb/blueprints/internal/fetch"
	"github.com/iw2rmb/blueprints/internal/highlight"
	"github.com/iw2rmb/blueprints/internal/log"
	"github.com/iw2rmb/blueprints/internal/recent"
	"github.com/iw2rmb/blueprints/internal/ui"
)

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// runEditor runs the UI and the host loop until a quit passes the discard
// guard or either side fails.
func runEditor(ctx context.Context, cfg *config.Config, args []string) (err error) {
	if !isTerminal() {
		return errors.New("blueprints needs an interactive terminal")
	}

	logger := log.Get()
	defer func() {
		err = multierr.Append(err, ignoreSyncError(log.Flush()))
	}()

	clientOpts := []fetch.Option{
		fetch.WithUserAgent(blueprints.Version()),
		fetch.WithLogger(logger.Named("fetch")),
	}
	if cfg.Log.Verbose && cfg.Log.File != "" {
		f, ferr := os.OpenFile(cfg.Log.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if ferr != nil {
			return errors.Wrap(ferr, "failed to open log file for HTTP logging")
		}
		defer func() { err = multierr.Append(err, f.Close()) }()
		clientOpts = append(clientOpts, fetch.WithHTTPLog(f, false))
	}
	fetcher := fetch.New(fetch.NewHTTPClient(nil, clientOpts...), cfg.Import.Timeout)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bridge := ui.NewBridge()
	mailbox := document.NewMailbox()
	signals := newSignalForwarder(mailbox, cancel, logger)
	ctrl := document.NewController(bridge,
		document.WithQuitDeclined(signals.declined),
		document.WithFetcher(fetcher),
		document.WithRecents(recent.New(cfg.Recent.Path, cfg.Recent.Limit)),
		document.WithLogger(logger),
		document.WithDefaultURL(cfg.Import.DefaultURL),
		document.WithDefaultSaveName(cfg.Save.DefaultName),
	)

	edCfg := editor.Config{
		ShowLineNums: cfg.Editor.LineNumbers,
		TabWidth:     cfg.Editor.TabWidth,
		Style:        editor.DefaultStyle(),
		Clipboard:    clipboard.Default(),
	}
	if cfg.Editor.Highlight {
		edCfg.Highlighter = highlight.NewJSON(highlight.DefaultPalette())
	}
	app := ui.New(mailbox, ctrl, ui.Options{Editor: edCfg, Logger: logger})

	g, gctx := errgroup.WithContext(ctx)

	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithoutSignalHandler(),
		tea.WithContext(gctx),
	)
	bridge.Attach(p)

	stop := signals.start()
	defer stop()

	if len(args) == 1 {
		mailbox.Post(document.CommandOpen{Path: args[0]})
	}

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return errors.Wrap(err, "ui")
	})
	g.Go(func() error {
		defer mailbox.Close()
		return errors.Wrap(ctrl.Run(gctx, mailbox), "host")
	})

	logger.Info("started", zap.String("version", blueprints.Version()), zap.Strings("args", args))
	return g.Wait()
}

// ignoreSyncError drops the error zap reports when syncing a terminal
// device or pipe.
func ignoreSyncError(err error) error {
	if err == nil {
		return nil
	}
	var pathErr *os.PathError
	if errors.As(err, &pathErr) && (pathErr.Path == "/dev/stdout" || pathErr.Path == "/dev/stderr") {
		return nil
	}
	return err
}
