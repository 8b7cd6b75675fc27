package translate_test

import (
	"testing"

	"bowersync/internal/translate"
)

func TestSyncEndToEnd(t *testing.T) {
	pkg := mustDecode(t, `{"name": "pkg", "author": "Jane", "main": "index.js", "version": "1.0.0", "scripts": {}}`)

	got, err := translate.Sync(pkg, nil, translate.DefaultOptions())
	if err != nil {
		t.Fatalf("Sync returned error: %v", err)
	}
	want := `{"name":"pkg","authors":["Jane"],"main":["index.js"]}`
	if compact(t, got) != want {
		t.Fatalf("unexpected result:\n got %s\nwant %s", compact(t, got), want)
	}
}

func TestSyncDoesNotMutateSource(t *testing.T) {
	doc := `{"name": "pkg", "author": {"name": "A", "url": "http://a"}, "main": "index.js", "version": "1.0.0"}`
	pkg := mustDecode(t, doc)
	before := compact(t, pkg)

	if _, err := translate.Sync(pkg, nil, translate.DefaultOptions()); err != nil {
		t.Fatalf("Sync returned error: %v", err)
	}
	if after := compact(t, pkg); after != before {
		t.Fatalf("source manifest mutated:\nbefore %s\n after %s", before, after)
	}
}

func TestSyncMergesOntoExisting(t *testing.T) {
	existing := mustDecode(t, `{"name": "old", "license": "MIT"}`)
	pkg := mustDecode(t, `{"name": "pkg", "main": "index.js"}`)

	opts := translate.DefaultOptions()
	opts.Extend = true
	got, err := translate.Sync(pkg, existing, opts)
	if err != nil {
		t.Fatalf("Sync returned error: %v", err)
	}
	want := `{"name":"pkg","license":"MIT","main":["index.js"]}`
	if compact(t, got) != want {
		t.Fatalf("unexpected merged result:\n got %s\nwant %s", compact(t, got), want)
	}
	if compact(t, existing) != `{"name":"old","license":"MIT"}` {
		t.Fatalf("existing manifest mutated: %s", compact(t, existing))
	}
}

func TestSyncIgnoresExistingWithoutExtend(t *testing.T) {
	existing := mustDecode(t, `{"name": "old", "license": "MIT"}`)
	pkg := mustDecode(t, `{"name": "pkg"}`)

	got, err := translate.Sync(pkg, existing, translate.DefaultOptions())
	if err != nil {
		t.Fatalf("Sync returned error: %v", err)
	}
	if compact(t, got) != `{"name":"pkg"}` {
		t.Fatalf("expected existing content to be replaced, got %s", compact(t, got))
	}
}

func TestSyncContributorsOption(t *testing.T) {
	pkg := mustDecode(t, `{"name": "pkg", "author": "A", "contributors": ["B"]}`)

	opts := translate.DefaultOptions()
	opts.SkipContributors = true
	got, err := translate.Sync(pkg, nil, opts)
	if err != nil {
		t.Fatalf("Sync returned error: %v", err)
	}
	if compact(t, got) != `{"name":"pkg","authors":["A"]}` {
		t.Fatalf("unexpected result: %s", compact(t, got))
	}
}

func TestSyncZeroOptionsIncludeContributors(t *testing.T) {
	pkg := mustDecode(t, `{"name": "pkg", "author": "A", "contributors": ["B"]}`)

	got, err := translate.Sync(pkg, nil, translate.Options{})
	if err != nil {
		t.Fatalf("Sync returned error: %v", err)
	}
	if compact(t, got) != `{"name":"pkg","authors":["A","B"]}` {
		t.Fatalf("unexpected result: %s", compact(t, got))
	}
}

func TestSyncWildcardMixedWithPatternsKeepsBowerShape(t *testing.T) {
	pkg := mustDecode(t, `{"name": "pkg", "version": "1.0.0", "author": "A", "scripts": {"x": "y"}, "private": true, "foo": 1}`)

	opts := translate.DefaultOptions()
	opts.Patterns = []string{"*", "foo"}
	opts.KeepVersion = true
	got, err := translate.Sync(pkg, nil, opts)
	if err != nil {
		t.Fatalf("Sync returned error: %v", err)
	}
	if compact(t, got) != `{"name":"pkg","authors":["A"],"foo":1}` {
		t.Fatalf("unexpected result: %s", compact(t, got))
	}
}

func TestSyncVersionHandling(t *testing.T) {
	pkg := mustDecode(t, `{"name": "pkg", "version": "1.2.3"}`)

	opts := translate.DefaultOptions()
	opts.Patterns = []string{"version"}
	stripped, err := translate.Sync(pkg, nil, opts)
	if err != nil {
		t.Fatalf("Sync returned error: %v", err)
	}
	if stripped.Has("version") {
		t.Fatal("expected version to be stripped by default")
	}

	opts.KeepVersion = true
	kept, err := translate.Sync(pkg, nil, opts)
	if err != nil {
		t.Fatalf("Sync returned error: %v", err)
	}
	if compact(t, kept) != `{"name":"pkg","version":"1.2.3"}` {
		t.Fatalf("expected version with KeepVersion, got %s", compact(t, kept))
	}
}

func TestSyncKeepEmpty(t *testing.T) {
	pkg := mustDecode(t, `{"name": "pkg", "description": ""}`)

	opts := translate.DefaultOptions()
	opts.KeepEmpty = true
	got, err := translate.Sync(pkg, nil, opts)
	if err != nil {
		t.Fatalf("Sync returned error: %v", err)
	}
	if compact(t, got) != `{"name":"pkg","description":"","main":[]}` {
		t.Fatalf("unexpected result with KeepEmpty: %s", compact(t, got))
	}
}

func TestSyncOmitsAuthorsWithoutAuthorInformation(t *testing.T) {
	pkg := mustDecode(t, `{"name": "pkg"}`)
	opts := translate.DefaultOptions()
	opts.KeepEmpty = true

	got, err := translate.Sync(pkg, nil, opts)
	if err != nil {
		t.Fatalf("Sync returned error: %v", err)
	}
	if got.Has("authors") {
		t.Fatalf("expected no authors key, got %s", compact(t, got))
	}
}

func TestSyncRequiresSource(t *testing.T) {
	if _, err := translate.Sync(nil, nil, translate.DefaultOptions()); err == nil {
		t.Fatal("expected error for nil source")
	}
}

func TestSyncRejectsMalformedPattern(t *testing.T) {
	opts := translate.DefaultOptions()
	opts.Patterns = []string{"[oops"}
	if _, err := translate.Sync(mustDecode(t, `{"name": "pkg"}`), nil, opts); err == nil {
		t.Fatal("expected malformed pattern error")
	}
}

func TestMergeAppendsNewKeys(t *testing.T) {
	base := mustDecode(t, `{"b": 1, "a": 2}`)
	overlay := mustDecode(t, `{"c": 3, "a": 4}`)

	if got := compact(t, translate.Merge(base, overlay)); got != `{"b":1,"a":4,"c":3}` {
		t.Fatalf("unexpected merge: %s", got)
	}
}
