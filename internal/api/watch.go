package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bowersync/internal/logging"
	"bowersync/internal/watch"
)

// WatchRequest describes a long-running sync that repeats whenever the
// source manifest changes.
type WatchRequest struct {
	SyncRequest
	// Debounce is the quiet period after a change before re-syncing.
	Debounce time.Duration
	// OnResult is invoked after every sync attempt, including the initial one.
	OnResult func(SyncResult, error)
}

// WatchWorkspace syncs once, then again after every change to the source
// manifest, until ctx is cancelled. Sync failures are delivered to OnResult
// rather than ending the watch so a half-saved file does not stop it.
func WatchWorkspace(ctx context.Context, req WatchRequest) error {
	if req.Config == nil {
		return errors.New("watch: config is required")
	}
	logger := logging.NewComponentLogger(req.Logger, "watch")

	watcher, err := watch.New(req.Logger, req.Debounce)
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(req.Config.Paths.Source); err != nil {
		return fmt.Errorf("watch source manifest: %w", err)
	}

	run := func() {
		result, err := SyncWorkspace(ctx, req.SyncRequest)
		if err != nil {
			logger.Warn("sync failed", logging.Error(err))
		}
		if req.OnResult != nil {
			req.OnResult(result, err)
		}
	}

	logger.Info("watching source manifest", logging.String("path", req.Config.Paths.Source))
	run()
	return watcher.Run(ctx, run)
}
