package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"bowersync/internal/api"
	"bowersync/internal/manifest"
)

func newSyncCommand(ctx *commandContext) *cobra.Command {
	var flags syncFlags
	var dryRun bool
	var watchSource bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Write bower.json from package.json",
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

			req := api.SyncRequest{
				Config: cfg,
				Store:  st,
				Logger: logger,
				DryRun: dryRun,
			}
			printOnly := dryRun || cfg.Sync.NoBower
			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()

			if watchSource {
				runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				fmt.Fprintf(errOut, "Watching %s (Ctrl+C to stop)\n", cfg.Paths.Source)
				return api.WatchWorkspace(runCtx, api.WatchRequest{
					SyncRequest: req,
					OnResult: func(result api.SyncResult, err error) {
						if err != nil {
							fmt.Fprintf(errOut, "sync failed: %v\n", err)
							return
						}
						if err := reportSync(out, errOut, result, printOnly); err != nil {
							fmt.Fprintf(errOut, "report sync: %v\n", err)
						}
					},
				})
			}

			result, err := api.SyncWorkspace(cmd.Context(), req)
			if err != nil {
				return err
			}
			return reportSync(out, errOut, result, printOnly)
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the result without writing bower.json")
	cmd.Flags().BoolVarP(&watchSource, "watch", "w", false, "Re-sync whenever package.json changes")
	return cmd
}

func reportSync(out, errOut io.Writer, result api.SyncResult, printOnly bool) error {
	for _, warning := range result.Warnings {
		fmt.Fprintf(errOut, "warning: %s\n", warning)
	}
	if printOnly {
		data, err := manifest.Encode(result.Manifest)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	if !result.Written {
		fmt.Fprintf(out, "%s already up to date\n", result.Destination)
		return nil
	}
	fmt.Fprintf(out, "Wrote %s (%d keys, %d changed)\n", result.Destination, result.Manifest.Len(), countChanges(result.Changes))
	return nil
}

func countChanges(changes []manifest.Change) int {
	count := 0
	for _, change := range changes {
		if change.Kind != manifest.ChangeUnchanged {
			count++
		}
	}
	return count
}
