package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/afero"

	"bowersync/internal/logging"
	"bowersync/internal/manifest"
)

const lockRetryDelay = 50 * time.Millisecond

// Store provides manifest file access on top of an afero file system.
type Store struct {
	fs     afero.Fs
	logger *slog.Logger
	lock   bool
}

// New constructs a store backed by fsys. Advisory locking is enabled when
// fsys is the OS file system.
func New(fsys afero.Fs, logger *slog.Logger) *Store {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	_, isOS := fsys.(*afero.OsFs)
	return &Store{
		fs:     fsys,
		logger: logging.NewComponentLogger(logger, "store"),
		lock:   isOS,
	}
}

// NewOS constructs a store on the real file system.
func NewOS(logger *slog.Logger) *Store {
	return New(afero.NewOsFs(), logger)
}

// Exists reports whether path exists as a regular file.
func (s *Store) Exists(path string) (bool, error) {
	info, err := s.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", path)
	}
	return true, nil
}

// ReadManifest reads and decodes the manifest at path.
func (s *Store) ReadManifest(path string) (*manifest.Manifest, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	m, err := manifest.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	s.logger.Debug("read manifest",
		logging.String("path", path),
		logging.Int("key_count", m.Len()))
	return m, nil
}

// Bootstrap writes an empty manifest to path when nothing exists there yet.
// It reports whether a file was created.
func (s *Store) Bootstrap(ctx context.Context, path string) (bool, error) {
	exists, err := s.Exists(path)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := s.Write(ctx, path, manifest.New()); err != nil {
		return false, err
	}
	s.logger.Info("created empty manifest", logging.String("path", path))
	return true, nil
}

// Write encodes m and atomically replaces the file at path.
func (s *Store) Write(ctx context.Context, path string, m *manifest.Manifest) error {
	data, err := manifest.Encode(m)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	unlock, err := s.acquire(ctx, path)
	if err != nil {
		return err
	}
	defer unlock()

	tmpPath := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := s.fs.Rename(tmpPath, path); err != nil {
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	s.logger.Debug("wrote manifest",
		logging.String("path", path),
		logging.Int("bytes", len(data)))
	return nil
}

func (s *Store) acquire(ctx context.Context, path string) (func(), error) {
	if !s.lock {
		return func() {}, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	lockPath := path + ".lock"
	lock := flock.New(lockPath)
	ok, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", lockPath, err)
	}
	if !ok {
		return nil, fmt.Errorf("acquire lock %s: another process holds it", lockPath)
	}
	// The lock file stays on disk; removing it would let a waiter on the old
	// inode and a newcomer on a fresh file both hold the lock.
	return func() {
		_ = lock.Unlock()
	}, nil
}
