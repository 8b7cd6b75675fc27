package testsupport

import (
	"path/filepath"
	"testing"

	"bowersync/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose manifest paths live under a unique temp
// directory per test. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.Source = filepath.Join(base, "package.json")
	cfgVal.Paths.Destination = filepath.Join(base, "bower.json")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithBaseDir roots the manifest paths at dir instead of a temp directory.
// Used with in-memory file systems where the paths never touch disk.
func WithBaseDir(dir string) ConfigOption {
	return func(b *configBuilder) {
		b.baseDir = dir
		b.cfg.Paths.Source = filepath.Join(dir, "package.json")
		b.cfg.Paths.Destination = filepath.Join(dir, "bower.json")
	}
}

// WithExtend toggles merging into the existing destination.
func WithExtend(extend bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Sync.Extend = extend
	}
}

// WithNoBower toggles the never-write mode.
func WithNoBower(noBower bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Sync.NoBower = noBower
	}
}

// WithPatterns sets the extra key patterns and fails the test when the
// resulting config does not validate.
func WithPatterns(patterns ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Sync.Patterns = patterns
		if err := b.cfg.Validate(); err != nil {
			b.t.Fatalf("invalid patterns %v: %v", patterns, err)
		}
	}
}

// BaseDir returns the directory holding the config's manifest paths.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.Source)
}
