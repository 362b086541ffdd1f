package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/blueprints"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of blueprints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), blueprints.Describe())
			return err
		},
	}
}
