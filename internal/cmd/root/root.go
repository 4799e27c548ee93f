// Package root assembles the tagsweep root command.
package root

import (
	"github.com/schmitthub/tagsweep/internal/cmd/clean"
	initcmd "github.com/schmitthub/tagsweep/internal/cmd/init"
	"github.com/schmitthub/tagsweep/internal/cmd/tags"
	versioncmd "github.com/schmitthub/tagsweep/internal/cmd/version"
	"github.com/schmitthub/tagsweep/internal/cmdutil"
	"github.com/schmitthub/tagsweep/internal/config"
	"github.com/schmitthub/tagsweep/internal/logger"
	"github.com/spf13/cobra"
)

// NewCmdRoot creates the root command for the tagsweep CLI.
func NewCmdRoot(f *cmdutil.Factory) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "tagsweep",
		Short: "Clean old image tags from a container registry",
		Long: `Tagsweep applies a retention policy to a repository's tags:
the "latest" tag, the newest release versions, and the newest build
tags are kept; everything else is deleted.

Quick start:
  tagsweep init                          # Write ~/.tagsweep/settings.yaml
  tagsweep tags myregistry myapp         # Show the retention plan
  tagsweep clean myregistry myapp --dry-run
  tagsweep clean myregistry myapp`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       f.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initializeLogger(f, debug)

			logger.Debug().
				Str("version", f.Version).
				Bool("debug", debug).
				Msg("tagsweep starting")
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	cmd.SetVersionTemplate(versioncmd.Format(f.Version, f.Commit))

	cmd.AddCommand(clean.NewCmdClean(f, nil))
	cmd.AddCommand(tags.NewCmdTags(f, nil))
	cmd.AddCommand(initcmd.NewCmdInit(f, nil))
	cmd.AddCommand(versioncmd.NewCmdVersion(f))

	return cmd
}

// initializeLogger sets up the logger with file logging if possible.
// Falls back to console-only logging on any errors.
func initializeLogger(f *cmdutil.Factory, debug bool) {
	settings, err := f.Settings()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to load settings")
		return
	}

	logsDir, err := config.LogsDir()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to get logs directory")
		return
	}

	if err := logger.InitWithFile(debug, logsDir, settings.Logging.ToLoggerConfig()); err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable")
	}
}
