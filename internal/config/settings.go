// Package config handles tagsweep user settings.
// Settings live in ~/.tagsweep/settings.yaml and may be overridden per
// key through TAGSWEEP_* environment variables.
package config

import (
	"fmt"

	"github.com/schmitthub/tagsweep/internal/logger"
)

// Settings represents user-level configuration stored in ~/.tagsweep/settings.yaml.
type Settings struct {
	// Retention configures how many tags are kept per category.
	Retention RetentionConfig `yaml:"retention,omitempty" mapstructure:"retention"`

	// Registry configures the registry backend.
	Registry RegistryConfig `yaml:"registry,omitempty" mapstructure:"registry"`

	// Logging configures file-based logging.
	Logging LoggingConfig `yaml:"logging,omitempty" mapstructure:"logging"`
}

// RetentionConfig configures per-category keep counts.
// Zero values fall back to the defaults via the getters.
type RetentionConfig struct {
	// KeepSemver is how many semantic-version tags to keep (default: 5)
	KeepSemver int `yaml:"keep_semver,omitempty" mapstructure:"keep_semver"`
	// KeepBuild is how many alphanumeric build tags to keep (default: 5)
	KeepBuild int `yaml:"keep_build,omitempty" mapstructure:"keep_build"`
}

// GetKeepSemver returns the semver keep count, defaulting to 5.
func (c *RetentionConfig) GetKeepSemver() int {
	if c.KeepSemver <= 0 {
		return DefaultKeepSemver
	}
	return c.KeepSemver
}

// GetKeepBuild returns the build-tag keep count, defaulting to 5.
func (c *RetentionConfig) GetKeepBuild() int {
	if c.KeepBuild <= 0 {
		return DefaultKeepBuild
	}
	return c.KeepBuild
}

// RegistryConfig configures which backend talks to the registry.
type RegistryConfig struct {
	// Backend selects the registry implementation: "az" (Azure CLI) or
	// "api" (registry HTTP API). Default: "az".
	Backend string `yaml:"backend,omitempty" mapstructure:"backend"`
	// DefaultRegistry is used when a command's registry argument is
	// ambiguous for the api backend (host without domain).
	DefaultRegistry string `yaml:"default_registry,omitempty" mapstructure:"default_registry"`
}

// GetBackend returns the configured backend name, defaulting to "az".
func (c *RegistryConfig) GetBackend() string {
	if c.Backend == "" {
		return DefaultBackend
	}
	return c.Backend
}

// Validate checks the backend name.
func (c *RegistryConfig) Validate() error {
	switch c.GetBackend() {
	case "az", "api":
		return nil
	default:
		return fmt.Errorf("unknown registry backend %q (valid: az, api)", c.Backend)
	}
}

// LoggingConfig configures file-based logging.
// File logging is enabled by default; disable via settings.yaml.
type LoggingConfig struct {
	// FileEnabled enables logging to file (default: true)
	FileEnabled *bool `yaml:"file_enabled,omitempty" mapstructure:"file_enabled"`
	// MaxSizeMB is the max size in MB before rotation (default: 50)
	MaxSizeMB int `yaml:"max_size_mb,omitempty" mapstructure:"max_size_mb"`
	// MaxAgeDays is max days to retain old logs (default: 7)
	MaxAgeDays int `yaml:"max_age_days,omitempty" mapstructure:"max_age_days"`
	// MaxBackups is max number of old log files to keep (default: 3)
	MaxBackups int `yaml:"max_backups,omitempty" mapstructure:"max_backups"`
}

// ToLoggerConfig converts to the logger package's config type.
// The types are duplicated to avoid a config → logger import cycle
// in the other direction.
func (c *LoggingConfig) ToLoggerConfig() *logger.LoggingConfig {
	return &logger.LoggingConfig{
		FileEnabled: c.FileEnabled,
		MaxSizeMB:   c.MaxSizeMB,
		MaxAgeDays:  c.MaxAgeDays,
		MaxBackups:  c.MaxBackups,
	}
}
