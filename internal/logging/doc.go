// Package logging assembles the structured slog loggers used by bowersync.
//
// It owns the console and JSON handlers, level parsing and output plumbing,
// and context helpers that tag every line of a sync run with its run ID.
// Log output goes to stderr by default so stdout stays free for manifests
// and reports. A no-op logger is provided for tests and wiring code that
// cannot fail.
package logging
