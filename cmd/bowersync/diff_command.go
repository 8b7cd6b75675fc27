package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bowersync/internal/api"
	"bowersync/internal/manifest"
)

func newDiffCommand(ctx *commandContext) *cobra.Command {
	var flags syncFlags
	var jsonOutput bool
	var showAll bool

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show how a sync would change bower.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, logger, st, err := ctx.workspace()
			if err != nil {
				return err
			}
			cfg, err := flags.apply(cmd, base)
			if err != nil {
				return err
			}

			result, err := api.SyncWorkspace(cmd.Context(), api.SyncRequest{
				Config: cfg,
				Store:  st,
				Logger: logger,
				DryRun: true,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				changes := result.Changes
				if !showAll {
					changes = filterChanged(changes)
				}
				return writeJSON(cmd, changes)
			}

			out := cmd.OutOrStdout()
			if !result.DestinationExisted {
				fmt.Fprintf(out, "%s does not exist; every key would be added\n", result.Destination)
			}
			if !manifest.HasChanges(result.Changes) && !showAll {
				fmt.Fprintf(out, "%s is up to date\n", result.Destination)
				return nil
			}
			table := renderChanges(result.Changes, showAll, shouldColorize(out))
			if table != "" {
				fmt.Fprintln(out, table)
			}
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit changes as JSON")
	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Include unchanged keys")
	return cmd
}

func filterChanged(changes []manifest.Change) []manifest.Change {
	filtered := make([]manifest.Change, 0, len(changes))
	for _, change := range changes {
		if change.Kind != manifest.ChangeUnchanged {
			filtered = append(filtered, change)
		}
	}
	return filtered
}
