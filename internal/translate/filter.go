package translate

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"bowersync/internal/manifest"
)

// Whitelist lists the bower.json fields copied from package.json, in output
// order.
var Whitelist = []string{
	"name",        // required
	"description", // recommended
	"repository",
	"license", // recommended
	"homepage",
	"authors",
	"main",   // recommended
	"ignore", // recommended
	"dependencies",
	"devDependencies",
	"keywords", // recommended
}

// DefaultPatterns is the pattern list used when the caller supplies none. A
// bare "*" selects nothing beyond the whitelist, alone or mixed with other
// patterns.
var DefaultPatterns = []string{wildcardPattern}

const wildcardPattern = "*"

// ValidatePatterns reports the first malformed glob pattern.
func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid field pattern %q", pattern)
		}
	}
	return nil
}

// SelectFields returns a new manifest holding the whitelisted keys of m in
// whitelist order, followed by keys matching one of patterns in document
// order. Values are shared with m.
func SelectFields(m *manifest.Manifest, patterns []string) (*manifest.Manifest, error) {
	extras := effectivePatterns(patterns)
	if err := ValidatePatterns(extras); err != nil {
		return nil, err
	}

	out := manifest.New()
	for _, key := range Whitelist {
		if value, ok := m.Get(key); ok {
			out.Set(key, value)
		}
	}
	if len(extras) == 0 {
		return out, nil
	}
	for _, key := range m.Keys() {
		if out.Has(key) || !matchesAny(extras, key) {
			continue
		}
		value, _ := m.Get(key)
		out.Set(key, value)
	}
	return out, nil
}

// effectivePatterns drops every literal "*" entry, which means "whitelist
// only" wherever it appears, and returns the remaining extras.
func effectivePatterns(patterns []string) []string {
	var extras []string
	for _, pattern := range patterns {
		if pattern == wildcardPattern {
			continue
		}
		extras = append(extras, pattern)
	}
	return extras
}

func matchesAny(patterns []string, key string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, key); err == nil && ok {
			return true
		}
	}
	return false
}

// OmitEmpty returns a copy of m without entries whose value is an empty
// string, empty array, empty object or null, at any depth. Arrays lose their
// empty elements. false and 0 are kept.
func OmitEmpty(m *manifest.Manifest) *manifest.Manifest {
	out := manifest.New()
	for _, key := range m.Keys() {
		value, _ := m.Get(key)
		if pruned, keep := pruneValue(value); keep {
			out.Set(key, pruned)
		}
	}
	return out
}

func pruneValue(value any) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case string:
		return v, v != ""
	case *manifest.Manifest:
		if v == nil {
			return nil, false
		}
		pruned := OmitEmpty(v)
		return pruned, pruned.Len() > 0
	case []any:
		items := make([]any, 0, len(v))
		for _, item := range v {
			if pruned, keep := pruneValue(item); keep {
				items = append(items, pruned)
			}
		}
		return items, len(items) > 0
	default:
		return value, true
	}
}
