package main

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/blueprints/internal/config"
	"github.com/iw2rmb/blueprints/internal/log"
)

type flags struct {
	configPath string
	logFile    string
	verbose    bool
	importURL  string
}

// session is shared by the root command and its subcommands once the
// configuration is loaded.
type session struct {
	flags flags
	cfg   *config.Config
}

func rootCmd() *cobra.Command {
	s := &session{}

	cmd := cobra.Command{
		Use:   "blueprints [file]",
		Short: "Edit JSON blueprint documents in the terminal",
		Long: `Blueprints opens, edits, saves and imports JSON blueprint documents.
Unsaved changes are guarded: new, open, import and quit ask before
discarding them.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd.Context(), s.cfg, args)
		},
	}

	pflags := cmd.PersistentFlags()
	pflags.StringVarP(&s.flags.configPath, "config", "c", config.DefaultPath(), "Path to the config file.")
	pflags.StringVar(&s.flags.logFile, "log-file", "", "Write logs to this file.")
	pflags.BoolVarP(&s.flags.verbose, "verbose", "v", false, "Enable debug logging, including HTTP traffic.")
	cmd.Flags().StringVar(&s.flags.importURL, "import-url", "", "Default URL suggested by Import from URL.")

	cmd.AddCommand(versionCmd())
	cmd.AddCommand(recentCmd(s))

	return &cmd
}

func (s *session) load(cmd *cobra.Command) error {
	if err := config.LoadEnv(".env", filepath.Join(config.Dir(), ".env")); err != nil {
		return err
	}

	cfg := config.NewDefaultConfig()
	var err error
	if cmd.Flags().Changed("config") {
		err = config.Load(s.flags.configPath, cfg)
	} else {
		err = config.LoadOptional(s.flags.configPath, cfg)
	}
	if err != nil {
		return err
	}

	if s.flags.logFile != "" {
		cfg.Log.File = s.flags.logFile
	}
	if s.flags.verbose {
		cfg.Log.Verbose = true
	}
	if s.flags.importURL != "" {
		cfg.Import.DefaultURL = s.flags.importURL
		if err := cfg.Validate(); err != nil {
			return errors.Wrap(err, "invalid --import-url")
		}
	}

	if err := log.Set(cfg.Log.File, cfg.Log.Verbose); err != nil {
		return errors.Wrap(err, "failed to set up logging")
	}
	s.cfg = cfg
	return nil
}
