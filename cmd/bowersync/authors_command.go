package main

import (
	"github.com/spf13/cobra"

	"bowersync/internal/api"
)

func newAuthorsCommand(ctx *commandContext) *cobra.Command {
	var source string
	var noContributors bool

	cmd := &cobra.Command{
		Use:   "authors",
		Short: "Print the bower authors derived from package.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, _, st, err := ctx.workspace()
			if err != nil {
				return err
			}
			flags := syncFlags{source: source, noContributors: noContributors}
			cfg, err := flags.apply(cmd, base)
			if err != nil {
				return err
			}
			authors, err := api.Authors(cfg, st)
			if err != nil {
				return err
			}
			return writeJSON(cmd, authors)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Path to package.json")
	cmd.Flags().BoolVar(&noContributors, "no-contributors", false, "Do not include contributors")
	return cmd
}
