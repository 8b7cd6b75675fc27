// Package store reads and writes manifest files.
//
// Store wraps an afero file system so commands run against the real disk
// while tests use an in-memory tree. Writes go through a temp file and a
// rename, guarded by an advisory flock lock when the backing file system is
// the operating system's.
package store
