package config

import "github.com/spf13/viper"

const (
	// DefaultKeepSemver is how many semantic-version tags survive a sweep.
	DefaultKeepSemver = 5
	// DefaultKeepBuild is how many alphanumeric build tags survive a sweep.
	DefaultKeepBuild = 5
	// DefaultBackend is the registry backend used when none is configured.
	DefaultBackend = "az"
)

// SetDefaults installs default values on a viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("retention.keep_semver", DefaultKeepSemver)
	v.SetDefault("retention.keep_build", DefaultKeepBuild)
	v.SetDefault("registry.backend", DefaultBackend)
	v.SetDefault("registry.default_registry", "")
	v.SetDefault("logging.max_size_mb", 50)
	v.SetDefault("logging.max_age_days", 7)
	v.SetDefault("logging.max_backups", 3)
}

// DefaultSettings returns a Settings populated with defaults.
func DefaultSettings() *Settings {
	return &Settings{
		Retention: RetentionConfig{
			KeepSemver: DefaultKeepSemver,
			KeepBuild:  DefaultKeepBuild,
		},
		Registry: RegistryConfig{
			Backend: DefaultBackend,
		},
	}
}

// DefaultSettingsYAML is the commented template written by EnsureExists.
const DefaultSettingsYAML = `# tagsweep user settings
# Per-key environment overrides use the TAGSWEEP_ prefix,
# e.g. TAGSWEEP_RETENTION_KEEP_SEMVER=3.

retention:
  # How many semantic-version tags (x.y.z / x.y.z.n) to keep, newest first.
  keep_semver: 5
  # How many alphanumeric build tags (6+ chars) to keep, newest first.
  keep_build: 5

registry:
  # Registry backend: "az" shells out to the Azure CLI,
  # "api" speaks the registry HTTP API directly.
  backend: az

# logging:
#   file_enabled: true
#   max_size_mb: 50
#   max_age_days: 7
#   max_backups: 3
`
