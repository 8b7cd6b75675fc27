package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"bowersync/internal/translate"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateSync(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.Source) == "" {
		return errors.New("paths.source must be set")
	}
	if strings.TrimSpace(c.Paths.Destination) == "" {
		return errors.New("paths.destination must be set")
	}
	if filepath.Clean(c.Paths.Source) == filepath.Clean(c.Paths.Destination) {
		return fmt.Errorf("paths.source and paths.destination must differ (both %s)", c.Paths.Source)
	}
	return nil
}

func (c *Config) validateSync() error {
	if err := translate.ValidatePatterns(c.Sync.Patterns); err != nil {
		return fmt.Errorf("sync.patterns: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
