package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"bowersync/internal/logging"
)

// DefaultDebounce is the quiet period applied when New receives zero.
const DefaultDebounce = 150 * time.Millisecond

// Watcher delivers debounced change notifications for a set of files.
type Watcher struct {
	fs       *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	mu      sync.RWMutex
	targets map[string]struct{}
	dirs    map[string]struct{}

	closeOnce sync.Once
}

// New creates a watcher. A non-positive debounce uses DefaultDebounce.
func New(logger *slog.Logger, debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		fs:       fsWatcher,
		logger:   logging.NewComponentLogger(logger, "watch"),
		debounce: debounce,
		targets:  make(map[string]struct{}),
		dirs:     make(map[string]struct{}),
	}, nil
}

// Add starts observing path. The file does not need to exist yet but its
// directory does.
func (w *Watcher) Add(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve watch path: %w", err)
	}
	dir := filepath.Dir(absPath)

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.dirs[dir]; !ok {
		if err := w.fs.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		w.dirs[dir] = struct{}{}
	}
	w.targets[absPath] = struct{}{}
	w.logger.Debug("watching file", logging.String("path", absPath))
	return nil
}

// Run blocks until ctx is cancelled or the watcher is closed, calling
// onChange once per burst of writes to an added file. onChange runs on the
// Run goroutine.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("file changed",
				logging.String("path", event.Name),
				logging.String("op", event.Op.String()))
			pending = time.After(w.debounce)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			if err != nil {
				w.logger.Warn("file watch error", logging.Error(err))
			}
		case <-pending:
			pending = nil
			if onChange != nil {
				onChange()
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
		return false
	}
	return w.relevantPath(event.Name)
}

func (w *Watcher) relevantPath(path string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.targets[filepath.Clean(path)]
	return ok
}

// Close releases the underlying watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var closeErr error
	w.closeOnce.Do(func() {
		if err := w.fs.Close(); err != nil {
			closeErr = fmt.Errorf("close file watcher: %w", err)
		}
	})
	return closeErr
}
