// Package manifest models package manifests (package.json, bower.json) as
// ordered JSON documents.
//
// Go maps lose document order, which makes rewritten manifests noisy to
// review. Manifest keeps keys in the order they were decoded or set, decodes
// through gjson so nested objects keep their order too, and encodes with a
// stable two-space layout. Numbers keep their literal text.
//
// Diff compares two manifests key by key for the CLI's change report.
package manifest
