package translate

import (
	"errors"
	"fmt"

	"bowersync/internal/manifest"
)

// Options controls a Sync run.
type Options struct {
	// Patterns are extra glob patterns for keys to copy beyond the whitelist.
	Patterns []string
	// Extend merges the result over the existing destination instead of
	// replacing it.
	Extend bool
	// KeepEmpty disables empty-value pruning.
	KeepEmpty bool
	// SkipContributors leaves `contributors` out of `authors`.
	SkipContributors bool
	// KeepVersion lets `version` through when a pattern selects it.
	KeepVersion bool
}

// DefaultOptions returns the options used by the command line tool when no
// configuration overrides them. It equals the zero value.
func DefaultOptions() Options {
	return Options{}
}

// Sync converts source into bower.json content. existing is the parsed
// destination manifest, or nil when the destination does not exist; it is
// only consulted when opts.Extend is set. Neither input is modified.
func Sync(source, existing *manifest.Manifest, opts Options) (*manifest.Manifest, error) {
	if source == nil {
		return nil, errors.New("sync: source manifest is required")
	}
	view := source.Clone()

	mainValue, _ := view.Get("main")
	view.Set("main", NormalizeMain(mainValue))

	if authors := ToAuthors(source, !opts.SkipContributors); len(authors) > 0 {
		view.Set("authors", authors)
	}

	if !opts.KeepVersion {
		view.Delete("version")
	}

	result, err := SelectFields(view, opts.Patterns)
	if err != nil {
		return nil, fmt.Errorf("select fields: %w", err)
	}
	if !opts.KeepEmpty {
		result = OmitEmpty(result)
	}

	if opts.Extend && existing != nil {
		result = Merge(existing, result)
	}
	return result, nil
}

// Merge shallow-merges overlay onto a copy of base. Keys from overlay win;
// base keys keep their position and new keys are appended.
func Merge(base, overlay *manifest.Manifest) *manifest.Manifest {
	out := base.Clone()
	for _, key := range overlay.Keys() {
		value, _ := overlay.Get(key)
		out.Set(key, manifest.CloneValue(value))
	}
	return out
}
