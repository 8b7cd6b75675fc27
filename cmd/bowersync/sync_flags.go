package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bowersync/internal/config"
)

// syncFlags are the per-invocation overrides of the [paths] and [sync]
// config sections. Only flags the user set replace config values.
type syncFlags struct {
	source         string
	destination    string
	patterns       []string
	extend         bool
	keepEmpty      bool
	noContributors bool
	keepVersion    bool
	noBower        bool
}

func (f *syncFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.source, "source", "", "Path to package.json")
	flags.StringVar(&f.destination, "dest", "", "Path to bower.json")
	flags.StringArrayVarP(&f.patterns, "pattern", "p", nil, "Extra glob pattern for package.json keys to copy (repeatable)")
	flags.BoolVar(&f.extend, "extend", false, "Merge into the existing bower.json instead of replacing it")
	flags.BoolVar(&f.keepEmpty, "keep-empty", false, "Keep empty strings, arrays and objects")
	flags.BoolVar(&f.noContributors, "no-contributors", false, "Do not fold contributors into authors")
	flags.BoolVar(&f.keepVersion, "keep-version", false, "Let a pattern-selected version field through")
	flags.BoolVar(&f.noBower, "nobower", false, "Never write bower.json; print the result instead")
}

// apply returns a copy of base with the changed flags applied and validated.
func (f *syncFlags) apply(cmd *cobra.Command, base *config.Config) (*config.Config, error) {
	cfg := *base
	cfg.Sync.Patterns = append([]string(nil), base.Sync.Patterns...)
	flags := cmd.Flags()

	if flags.Changed("source") {
		path, err := config.ExpandPath(strings.TrimSpace(f.source))
		if err != nil {
			return nil, fmt.Errorf("resolve --source: %w", err)
		}
		cfg.Paths.Source = path
	}
	if flags.Changed("dest") {
		path, err := config.ExpandPath(strings.TrimSpace(f.destination))
		if err != nil {
			return nil, fmt.Errorf("resolve --dest: %w", err)
		}
		cfg.Paths.Destination = path
	}
	if flags.Changed("pattern") {
		cfg.Sync.Patterns = nil
		for _, pattern := range f.patterns {
			if trimmed := strings.TrimSpace(pattern); trimmed != "" {
				cfg.Sync.Patterns = append(cfg.Sync.Patterns, trimmed)
			}
		}
	}
	if flags.Changed("extend") {
		cfg.Sync.Extend = f.extend
	}
	if flags.Changed("keep-empty") {
		cfg.Sync.KeepEmpty = f.keepEmpty
	}
	if flags.Changed("no-contributors") {
		cfg.Sync.Contributors = !f.noContributors
	}
	if flags.Changed("keep-version") {
		cfg.Sync.KeepVersion = f.keepVersion
	}
	if flags.Changed("nobower") {
		cfg.Sync.NoBower = f.noBower
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
