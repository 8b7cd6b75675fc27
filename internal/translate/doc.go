// Package translate converts a package.json manifest into bower.json content.
//
// The conversion normalizes `main` into a list of files, folds `author` and
// `contributors` into a bower-style `authors` list, keeps only the fields
// bower understands (plus caller supplied glob patterns), prunes empty values
// and optionally merges the result over an existing bower.json. Everything in
// this package is pure: inputs are never mutated and nothing touches the file
// system. Reading and writing manifests is the job of internal/store.
package translate
