package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"bowersync/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	work := t.TempDir()
	t.Chdir(work)
	t.Setenv("HOME", t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	workDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if cfg.Paths.Source != filepath.Join(workDir, "package.json") {
		t.Fatalf("unexpected source: %q", cfg.Paths.Source)
	}
	if cfg.Paths.Destination != filepath.Join(workDir, "bower.json") {
		t.Fatalf("unexpected destination: %q", cfg.Paths.Destination)
	}
	if !cfg.Sync.Contributors {
		t.Fatal("expected contributors enabled by default")
	}
	if cfg.Sync.Extend || cfg.Sync.KeepEmpty || cfg.Sync.KeepVersion || cfg.Sync.NoBower {
		t.Fatalf("unexpected sync defaults: %+v", cfg.Sync)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadPrefersProjectConfig(t *testing.T) {
	work := t.TempDir()
	t.Chdir(work)
	t.Setenv("HOME", t.TempDir())

	contents := "[sync]\nextend = true\npatterns = [\"private\", \" private \", \"\"]\n"
	if err := os.WriteFile(filepath.Join(work, "bowersync.toml"), []byte(contents), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(resolved) != "bowersync.toml" {
		t.Fatalf("expected project config, got %q (exists=%v)", resolved, exists)
	}
	if !cfg.Sync.Extend {
		t.Fatal("expected extend from project config")
	}
	if len(cfg.Sync.Patterns) != 1 || cfg.Sync.Patterns[0] != "private" {
		t.Fatalf("expected deduplicated patterns, got %v", cfg.Sync.Patterns)
	}
	if !cfg.Sync.Contributors {
		t.Fatal("expected unspecified contributors to keep its default")
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Chdir(t.TempDir())
	configPath := filepath.Join(t.TempDir(), "custom.toml")

	type payload struct {
		Paths struct {
			Source      string `toml:"source"`
			Destination string `toml:"destination"`
		} `toml:"paths"`
		Sync struct {
			Contributors bool `toml:"contributors"`
			KeepVersion  bool `toml:"keep_version"`
		} `toml:"sync"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.Source = "web/package.json"
	custom.Paths.Destination = "web/bower.json"
	custom.Sync.Contributors = false
	custom.Sync.KeepVersion = true
	custom.Logging.Format = "JSON"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if !strings.HasSuffix(cfg.Paths.Source, filepath.Join("web", "package.json")) || !filepath.IsAbs(cfg.Paths.Source) {
		t.Fatalf("unexpected source path: %q", cfg.Paths.Source)
	}
	if cfg.Sync.Contributors {
		t.Fatal("expected contributors disabled from file")
	}
	if !cfg.Sync.KeepVersion {
		t.Fatal("expected keep_version from file")
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected normalized json format, got %q", cfg.Logging.Format)
	}

	opts := cfg.TranslateOptions()
	if !opts.SkipContributors || !opts.KeepVersion {
		t.Fatalf("unexpected translate options: %+v", opts)
	}
}

func TestLoadMissingCustomPathUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "absent.toml")

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists || resolved != path {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if filepath.Base(cfg.Paths.Destination) != "bower.json" {
		t.Fatalf("expected default destination, got %q", cfg.Paths.Destination)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "typo.toml")
	if err := os.WriteFile(path, []byte("[sync]\nextnd = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[sync\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BOWERSYNC_SOURCE", "app/package.json")
	t.Setenv("BOWERSYNC_DESTINATION", "app/bower.json")
	t.Setenv("BOWERSYNC_LOG_LEVEL", "DEBUG")
	t.Setenv("BOWERSYNC_LOG_FORMAT", "json")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !strings.HasSuffix(cfg.Paths.Source, filepath.Join("app", "package.json")) {
		t.Errorf("expected source from env, got %q", cfg.Paths.Source)
	}
	if !strings.HasSuffix(cfg.Paths.Destination, filepath.Join("app", "bower.json")) {
		t.Errorf("expected destination from env, got %q", cfg.Paths.Destination)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level from env, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected json format from env, got %q", cfg.Logging.Format)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Paths.Source != "package.json" || cfg.Paths.Destination != "bower.json" {
		t.Fatalf("unexpected sample paths: %+v", cfg.Paths)
	}
	if !cfg.Sync.Contributors {
		t.Fatal("expected sample to enable contributors")
	}

	t.Chdir(t.TempDir())
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.Source = "/work/same.json"
	cfg.Paths.Destination = "/work/same.json"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when source and destination match")
	}

	cfg = config.Default()
	cfg.Sync.Patterns = []string{"[unclosed"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for malformed pattern")
	}

	cfg = config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log format")
	}

	cfg = config.Default()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}

	cfg = config.Default()
	cfg.Paths.Source = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty source")
	}

	cfg = config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}
