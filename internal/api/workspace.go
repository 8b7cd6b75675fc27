package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/semver/v3"

	"bowersync/internal/config"
	"bowersync/internal/logging"
	"bowersync/internal/manifest"
	"bowersync/internal/store"
	"bowersync/internal/translate"
)

// ErrNoBower is returned when a workflow would create the destination while
// nobower is set.
var ErrNoBower = errors.New("nobower is set; refusing to create the destination manifest")

// SyncRequest describes one sync run.
type SyncRequest struct {
	Config *config.Config
	Store  *store.Store
	Logger *slog.Logger
	// DryRun computes the result without touching the destination.
	DryRun bool
}

// SyncResult reports the outcome of a sync run.
type SyncResult struct {
	RunID       string
	Source      string
	Destination string
	// Manifest is the bower.json content produced by the run.
	Manifest *manifest.Manifest
	// Previous is the destination content before the run, nil when the file
	// was absent or unreadable.
	Previous           *manifest.Manifest
	Changes            []manifest.Change
	DestinationExisted bool
	Written            bool
	// Warnings are non-fatal problems with the produced manifest.
	Warnings []string
}

// SyncWorkspace translates the configured source manifest and, unless the
// request is a dry run or nobower is set, writes the destination.
func SyncWorkspace(ctx context.Context, req SyncRequest) (SyncResult, error) {
	if req.Config == nil {
		return SyncResult{}, errors.New("sync: config is required")
	}
	cfg := req.Config
	st := req.Store
	if st == nil {
		st = store.NewOS(req.Logger)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, runID := logging.EnsureRunID(ctx)
	logger := logging.WithContext(ctx, logging.NewComponentLogger(req.Logger, "sync"))

	result := SyncResult{
		RunID:       runID,
		Source:      cfg.Paths.Source,
		Destination: cfg.Paths.Destination,
	}
	opts := cfg.TranslateOptions()

	source, err := st.ReadManifest(cfg.Paths.Source)
	if err != nil {
		return result, fmt.Errorf("load source manifest: %w", err)
	}

	exists, err := st.Exists(cfg.Paths.Destination)
	if err != nil {
		return result, fmt.Errorf("check destination manifest: %w", err)
	}
	result.DestinationExisted = exists
	if exists {
		previous, err := st.ReadManifest(cfg.Paths.Destination)
		switch {
		case err == nil:
			result.Previous = previous
		case opts.Extend:
			return result, fmt.Errorf("load destination manifest: %w", err)
		default:
			logger.Warn("existing destination manifest is unreadable and will be replaced",
				logging.String("path", cfg.Paths.Destination),
				logging.Error(err))
		}
	}

	var existing *manifest.Manifest
	if opts.Extend {
		existing = result.Previous
	}
	out, err := translate.Sync(source, existing, opts)
	if err != nil {
		return result, err
	}
	result.Manifest = out
	result.Changes = manifest.Diff(result.Previous, out)
	result.Warnings = checkManifest(out)
	for _, warning := range result.Warnings {
		logger.Warn("manifest check", logging.String("detail", warning))
	}

	logger.Debug("translated manifest",
		logging.Strings("keys", out.Keys()),
		logging.Bool("extend", opts.Extend),
		logging.Strings("patterns", opts.Patterns))

	if req.DryRun || cfg.Sync.NoBower {
		logger.Info("skipping destination write",
			logging.Bool("dry_run", req.DryRun),
			logging.Bool("nobower", cfg.Sync.NoBower))
		return result, nil
	}

	if result.Previous != nil && !manifest.HasChanges(result.Changes) {
		logger.Info("destination already up to date", logging.String("path", cfg.Paths.Destination))
		return result, nil
	}

	if err := st.Write(ctx, cfg.Paths.Destination, out); err != nil {
		return result, fmt.Errorf("write destination manifest: %w", err)
	}
	result.Written = true
	logger.Info("synced manifest",
		logging.String("source", cfg.Paths.Source),
		logging.String("destination", cfg.Paths.Destination),
		logging.Int("key_count", out.Len()))
	return result, nil
}

// InitRequest describes an explicit destination bootstrap.
type InitRequest struct {
	Config *config.Config
	Store  *store.Store
	Logger *slog.Logger
}

// InitWorkspace creates an empty destination manifest when none exists. It
// reports whether a file was created.
func InitWorkspace(ctx context.Context, req InitRequest) (bool, error) {
	if req.Config == nil {
		return false, errors.New("init: config is required")
	}
	if req.Config.Sync.NoBower {
		return false, ErrNoBower
	}
	st := req.Store
	if st == nil {
		st = store.NewOS(req.Logger)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	created, err := st.Bootstrap(ctx, req.Config.Paths.Destination)
	if err != nil {
		return false, fmt.Errorf("bootstrap destination manifest: %w", err)
	}
	return created, nil
}

// Authors returns the bower authors derived from the configured source
// manifest.
func Authors(cfg *config.Config, st *store.Store) ([]any, error) {
	if cfg == nil {
		return nil, errors.New("authors: config is required")
	}
	if st == nil {
		st = store.NewOS(nil)
	}
	source, err := st.ReadManifest(cfg.Paths.Source)
	if err != nil {
		return nil, fmt.Errorf("load source manifest: %w", err)
	}
	return translate.ToAuthors(source, cfg.Sync.Contributors), nil
}

// checkManifest reports values bower tooling is likely to reject.
func checkManifest(m *manifest.Manifest) []string {
	var warnings []string
	if value, ok := m.Get("version"); ok {
		version, isString := value.(string)
		if !isString {
			warnings = append(warnings, fmt.Sprintf("version is %T, expected a string", value))
		} else if _, err := semver.StrictNewVersion(version); err != nil {
			warnings = append(warnings, fmt.Sprintf("version %q is not valid semver: %v", version, err))
		}
	}
	if value, ok := m.Get("name"); ok {
		if name, isString := value.(string); !isString || name == "" {
			warnings = append(warnings, "name should be a non-empty string")
		}
	}
	return warnings
}
