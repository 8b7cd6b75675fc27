package translate

import (
	"encoding/json"

	"bowersync/internal/manifest"
)

// NormalizeMain coerces a `main` value into a list of non-empty strings.
func NormalizeMain(value any) []any {
	var candidates []any
	switch v := value.(type) {
	case nil:
		return []any{}
	case []any:
		candidates = v
	default:
		candidates = []any{v}
	}
	out := make([]any, 0, len(candidates))
	for _, candidate := range candidates {
		if s, ok := candidate.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ToAuthor converts an npm person into a bower author. Records are copied with
// a truthy `url` renamed to `homepage`; strings pass through unchanged. Any
// other value reports false and must be skipped.
func ToAuthor(person any) (any, bool) {
	switch p := person.(type) {
	case string:
		return p, true
	case *manifest.Manifest:
		if p == nil {
			return nil, false
		}
		author := p.Clone()
		if url, ok := author.Get("url"); ok && truthy(url) {
			author.Set("homepage", url)
			author.Delete("url")
		}
		return author, true
	default:
		return nil, false
	}
}

// ToAuthors builds the bower `authors` list from a manifest's `author` and,
// when includeContributors is set, `contributors` fields. An empty result
// means the manifest carries no author information.
func ToAuthors(pkg *manifest.Manifest, includeContributors bool) []any {
	authors := make([]any, 0)

	if author, ok := pkg.Get("author"); ok && truthy(author) {
		if converted, ok := ToAuthor(author); ok {
			authors = append(authors, converted)
		}
	}

	if !includeContributors {
		return authors
	}
	contributors, ok := pkg.Get("contributors")
	if !ok {
		return authors
	}
	list, ok := contributors.([]any)
	if !ok {
		return authors
	}
	for _, contributor := range list {
		if s, isString := contributor.(string); isString && s == "" {
			continue
		}
		if converted, ok := ToAuthor(contributor); ok {
			authors = append(authors, converted)
		}
	}
	return authors
}

// truthy mirrors the JavaScript notion used by npm tooling.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}
