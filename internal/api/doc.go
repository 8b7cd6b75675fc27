// Package api runs bowersync workflows on behalf of the CLI.
//
// SyncWorkspace resolves configured paths into a single sync run: read the
// source manifest, read the current destination when present, translate,
// diff, and persist unless the run is a dry run or nobower is set.
// InitWorkspace performs the explicit empty-destination bootstrap and Authors
// reports the normalized author list. Commands stay declarative while file
// access and translation live in internal/store and internal/translate.
package api
