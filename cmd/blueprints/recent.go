package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/blueprints/internal/recent"
)

func recentCmd(s *session) *cobra.Command {
	var clearAll bool

	cmd := cobra.Command{
		Use:   "recent",
		Short: "List recently opened blueprints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := recent.New(s.cfg.Recent.Path, s.cfg.Recent.Limit)
			out := cmd.OutOrStdout()
			if clearAll {
				if err := store.Clear(); err != nil {
					return err
				}
				_, err := fmt.Fprintf(out, "cleared %s\n", store.Path())
				return err
			}

			entries, err := store.List()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, err := fmt.Fprintf(out, "no recent blueprints in %s\n", store.Path())
				return err
			}
			for _, e := range entries {
				if _, err := fmt.Fprintf(out, "%s  %s\n", e.OpenedAt.Local().Format(time.DateTime), e.Path); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearAll, "clear", false, "Forget all recent blueprints.")

	return &cmd
}
