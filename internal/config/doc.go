// Package config loads, normalizes, and validates bowersync configuration.
//
// It supplies defaults (package.json in, bower.json out, contributors folded
// into authors), reads TOML files, and honours environment overrides such as
// BOWERSYNC_SOURCE and BOWERSYNC_LOG_LEVEL. Command line flags are applied
// on top of the loaded Config by the CLI.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log settings, and clear validation errors.
package config
