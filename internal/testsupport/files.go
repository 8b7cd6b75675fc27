package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"bowersync/internal/config"
	"bowersync/internal/manifest"
	"bowersync/internal/store"
)

// MemWorkspace is a config plus an in-memory file system holding its
// manifests.
type MemWorkspace struct {
	Config *config.Config
	Fs     afero.Fs
	Store  *store.Store
}

// NewMemWorkspace returns a workspace rooted at /work on a fresh in-memory
// file system.
func NewMemWorkspace(t testing.TB, opts ...ConfigOption) *MemWorkspace {
	t.Helper()
	fsys := afero.NewMemMapFs()
	cfg := NewConfig(t, append([]ConfigOption{WithBaseDir("/work")}, opts...)...)
	return &MemWorkspace{
		Config: cfg,
		Fs:     fsys,
		Store:  store.New(fsys, nil),
	}
}

// WriteSource stores contents as the source manifest.
func (w *MemWorkspace) WriteSource(t testing.TB, contents string) {
	t.Helper()
	WriteFile(t, w.Fs, w.Config.Paths.Source, contents)
}

// WriteDestination stores contents as the destination manifest.
func (w *MemWorkspace) WriteDestination(t testing.TB, contents string) {
	t.Helper()
	WriteFile(t, w.Fs, w.Config.Paths.Destination, contents)
}

// ReadDestination decodes the destination manifest.
func (w *MemWorkspace) ReadDestination(t testing.TB) *manifest.Manifest {
	t.Helper()
	return ReadManifest(t, w.Fs, w.Config.Paths.Destination)
}

// DestinationBytes returns the raw destination contents.
func (w *MemWorkspace) DestinationBytes(t testing.TB) string {
	t.Helper()
	data, err := afero.ReadFile(w.Fs, w.Config.Paths.Destination)
	if err != nil {
		t.Fatalf("read %s: %v", w.Config.Paths.Destination, err)
	}
	return string(data)
}

// DestinationExists reports whether the destination manifest is present.
func (w *MemWorkspace) DestinationExists(t testing.TB) bool {
	t.Helper()
	exists, err := afero.Exists(w.Fs, w.Config.Paths.Destination)
	if err != nil {
		t.Fatalf("stat %s: %v", w.Config.Paths.Destination, err)
	}
	return exists
}

// WriteFile writes contents to path on fsys, creating parent directories.
func WriteFile(t testing.TB, fsys afero.Fs, path, contents string) {
	t.Helper()
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := afero.WriteFile(fsys, path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadManifest reads and decodes the manifest at path on fsys.
func ReadManifest(t testing.TB, fsys afero.Fs, path string) *manifest.Manifest {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	m, err := manifest.Decode(data)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return m
}
