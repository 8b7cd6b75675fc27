package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSync()
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("BOWERSYNC_SOURCE"); ok && strings.TrimSpace(value) != "" {
		c.Paths.Source = strings.TrimSpace(value)
	}
	if value, ok := os.LookupEnv("BOWERSYNC_DESTINATION"); ok && strings.TrimSpace(value) != "" {
		c.Paths.Destination = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.Source) == "" {
		c.Paths.Source = defaultSource
	}
	if strings.TrimSpace(c.Paths.Destination) == "" {
		c.Paths.Destination = defaultDestination
	}

	var err error
	if c.Paths.Source, err = expandPath(strings.TrimSpace(c.Paths.Source)); err != nil {
		return fmt.Errorf("paths.source: %w", err)
	}
	if c.Paths.Destination, err = expandPath(strings.TrimSpace(c.Paths.Destination)); err != nil {
		return fmt.Errorf("paths.destination: %w", err)
	}
	return nil
}

func (c *Config) normalizeSync() {
	if len(c.Sync.Patterns) == 0 {
		return
	}
	patterns := make([]string, 0, len(c.Sync.Patterns))
	seen := make(map[string]struct{}, len(c.Sync.Patterns))
	for _, pattern := range c.Sync.Patterns {
		trimmed := strings.TrimSpace(pattern)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		patterns = append(patterns, trimmed)
	}
	c.Sync.Patterns = patterns
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("BOWERSYNC_LOG_FORMAT"); ok {
		c.Logging.Format = value
	}
	if value, ok := os.LookupEnv("BOWERSYNC_LOG_LEVEL"); ok {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if file := strings.TrimSpace(c.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}
