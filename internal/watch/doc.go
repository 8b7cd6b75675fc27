// Package watch reports changes to manifest files.
//
// A Watcher subscribes to the parent directory of every added file so editors
// that save by rename are still observed, filters events down to the added
// paths, and collapses bursts of writes into a single callback after a quiet
// period.
package watch
