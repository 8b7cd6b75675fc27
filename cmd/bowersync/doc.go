// Package main hosts the bowersync CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into workspace
// workflows from internal/api: syncing package.json into bower.json,
// previewing the per-key diff, bootstrapping an empty destination, listing
// normalized authors, and scaffolding configuration. Configuration resolution
// and logger setup are centralized in the command context so subcommands only
// translate flags and render results.
package main
