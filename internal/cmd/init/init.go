// Package initcmd provides the init command, which writes the default
// settings file.
package initcmd

import (
	"context"
	"fmt"

	"github.com/schmitthub/tagsweep/internal/cmdutil"
	"github.com/schmitthub/tagsweep/internal/config"
	"github.com/schmitthub/tagsweep/internal/iostreams"
	"github.com/spf13/cobra"
)

// Options holds options for the init command.
type Options struct {
	IOStreams      *iostreams.IOStreams
	SettingsLoader func() (*config.SettingsLoader, error)
}

// NewCmdInit creates the init command.
func NewCmdInit(f *cmdutil.Factory, runF func(context.Context, *Options) error) *cobra.Command {
	opts := &Options{
		IOStreams:      f.IOStreams,
		SettingsLoader: f.SettingsLoader,
	}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default settings file",
		Long: `Creates ~/.tagsweep/settings.yaml with the default retention
policy, ready to edit. An existing file is left untouched.`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return initRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func initRun(_ context.Context, opts *Options) error {
	ios := opts.IOStreams

	loader, err := opts.SettingsLoader()
	if err != nil {
		return err
	}

	created, err := loader.EnsureExists()
	if err != nil {
		return err
	}

	if created {
		ios.PrintSuccess("Created %s", loader.Path())
	} else {
		fmt.Fprintf(ios.ErrOut, "Settings file already exists at %s\n", loader.Path())
	}
	return nil
}
