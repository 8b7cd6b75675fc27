package translate_test

import (
	"testing"

	"bowersync/internal/manifest"
)

func mustDecode(t *testing.T, doc string) *manifest.Manifest {
	t.Helper()
	m, err := manifest.Decode([]byte(doc))
	if err != nil {
		t.Fatalf("decode %s: %v", doc, err)
	}
	return m
}

func compact(t *testing.T, value any) string {
	t.Helper()
	if m, ok := value.(*manifest.Manifest); ok {
		raw, err := m.MarshalJSON()
		if err != nil {
			t.Fatalf("marshal manifest: %v", err)
		}
		return string(raw)
	}
	wrapper := manifest.New()
	wrapper.Set("v", value)
	raw, err := wrapper.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal value: %v", err)
	}
	return string(raw[len(`{"v":`) : len(raw)-1])
}
