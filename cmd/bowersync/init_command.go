package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bowersync/internal/api"
)

func newInitCommand(ctx *commandContext) *cobra.Command {
	var destination string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty bower.json when none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, logger, st, err := ctx.workspace()
			if err != nil {
				return err
			}
			flags := syncFlags{destination: destination}
			cfg, err := flags.apply(cmd, base)
			if err != nil {
				return err
			}

			created, err := api.InitWorkspace(cmd.Context(), api.InitRequest{
				Config: cfg,
				Store:  st,
				Logger: logger,
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if created {
				fmt.Fprintf(out, "Created %s\n", cfg.Paths.Destination)
			} else {
				fmt.Fprintf(out, "%s already exists\n", cfg.Paths.Destination)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&destination, "dest", "", "Path to bower.json")
	return cmd
}
