package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"bowersync/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool
	var project bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			switch {
			case target != "":
			case project:
				target = config.ProjectConfigName
			default:
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			}
			expanded, err := config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}
			target = expanded

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&project, "project", false, "Write bowersync.toml in the current directory")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Validate configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if ctx.configFlag != nil {
				path = strings.TrimSpace(*ctx.configFlag)
			}
			cfg, resolved, exists, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", resolved)
			if !exists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			fmt.Fprintf(out, "Source:       %s\n", cfg.Paths.Source)
			fmt.Fprintf(out, "Destination:  %s\n", cfg.Paths.Destination)
			fmt.Fprintf(out, "Patterns:     %s\n", describePatterns(cfg.Sync.Patterns))
			fmt.Fprintf(out, "Extend:       %s\n", yesNo(cfg.Sync.Extend))
			fmt.Fprintf(out, "Keep empty:   %s\n", yesNo(cfg.Sync.KeepEmpty))
			fmt.Fprintf(out, "Contributors: %s\n", yesNo(cfg.Sync.Contributors))
			fmt.Fprintf(out, "Keep version: %s\n", yesNo(cfg.Sync.KeepVersion))
			fmt.Fprintf(out, "No bower:     %s\n", yesNo(cfg.Sync.NoBower))
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func describePatterns(patterns []string) string {
	if len(patterns) == 0 {
		return "(whitelist only)"
	}
	return strings.Join(patterns, ", ")
}
