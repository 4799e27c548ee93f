package cmdutil

import (
	"github.com/spf13/pflag"

	"github.com/schmitthub/tagsweep/internal/config"
)

// ApplyRetentionDefaults fills the retention counts and backend from
// settings for any flag the user did not set. Call it from RunE, after
// flag parsing but before the command runs.
func ApplyRetentionDefaults(flags *pflag.FlagSet, settings *config.Settings, keepSemver, keepBuild *int, backend *string) {
	if settings == nil || flags == nil {
		return
	}
	if !flags.Changed("keep-semver") {
		*keepSemver = settings.Retention.GetKeepSemver()
	}
	if !flags.Changed("keep-build") {
		*keepBuild = settings.Retention.GetKeepBuild()
	}
	if !flags.Changed("backend") {
		*backend = settings.Registry.GetBackend()
	}
}
