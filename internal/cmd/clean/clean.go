// Package clean provides the clean command: compute the retention plan
// for a repository and delete everything outside the keep-set.
package clean

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/schmitthub/tagsweep/internal/cmdutil"
	"github.com/schmitthub/tagsweep/internal/iostreams"
	"github.com/schmitthub/tagsweep/internal/logger"
	"github.com/schmitthub/tagsweep/internal/registry"
	"github.com/schmitthub/tagsweep/internal/retention"
	"github.com/schmitthub/tagsweep/internal/sweep"
	"github.com/spf13/cobra"
)

// Options holds options for the clean command.
type Options struct {
	IOStreams *iostreams.IOStreams
	Client    func(backend, registryName string, insecure bool) (registry.Client, error)

	Registry   string
	Repository string

	DryRun     bool
	Force      bool
	KeepSemver int
	KeepBuild  int
	Backend    string
	Insecure   bool
}

// NewCmdClean creates the clean command.
func NewCmdClean(f *cmdutil.Factory, runF func(context.Context, *Options) error) *cobra.Command {
	opts := &Options{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:   "clean <registry> <repository>",
		Short: "Delete tags outside the retention policy",
		Long: `Cleans old tags from a repository.

The keep-set is: the "latest" tag when present, the newest semantic
version tags (x.y.z or x.y.z.n), and the newest alphanumeric build
tags (6+ characters). Everything else is deleted, one tag at a time.

A listing failure is treated as an empty repository: the command warns
and exits cleanly without deleting anything.`,
		Example: `  # Show what would be deleted, without deleting
  tagsweep clean myregistry myapp --dry-run

  # Clean, keeping only the 3 newest versions per category
  tagsweep clean myregistry myapp --keep-semver 3 --keep-build 3

  # Clean through the registry HTTP API instead of the az CLI
  tagsweep clean myregistry.azurecr.io myapp --backend api`,
		Args: cmdutil.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Registry = args[0]
			opts.Repository = args[1]

			// Settings supply defaults for anything not set by flag.
			settings, err := f.Settings()
			if err != nil {
				return err
			}
			cmdutil.ApplyRetentionDefaults(cmd.Flags(), settings, &opts.KeepSemver, &opts.KeepBuild, &opts.Backend)

			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return cleanRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the tags that would be deleted without deleting them")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Do not prompt for confirmation")
	cmd.Flags().IntVar(&opts.KeepSemver, "keep-semver", 0, "How many semantic-version tags to keep (default from settings)")
	cmd.Flags().IntVar(&opts.KeepBuild, "keep-build", 0, "How many build tags to keep (default from settings)")
	cmd.Flags().StringVar(&opts.Backend, "backend", "", "Registry backend: az or api (default from settings)")
	cmd.Flags().BoolVar(&opts.Insecure, "insecure", false, "Allow plain HTTP (api backend only)")

	return cmd
}

func cleanRun(ctx context.Context, opts *Options) error {
	ios := opts.IOStreams
	cs := ios.ColorScheme()

	client, err := opts.Client(opts.Backend, opts.Registry, opts.Insecure)
	if err != nil {
		return err
	}

	tags, err := client.ListTags(ctx, opts.Repository)
	if err != nil {
		// Listing failures are soft: warn and treat as empty, so a
		// missing repository is a no-op rather than a failure.
		logger.Warn().Err(err).Str("repository", opts.Repository).Msg("listing failed, treating as empty")
		ios.PrintWarning("could not list tags for %s/%s, treating as empty", opts.Registry, opts.Repository)
		tags = nil
	}

	fmt.Fprintf(ios.ErrOut, "Found %d tags in %s/%s\n", len(tags), opts.Registry, opts.Repository)

	if len(tags) == 0 {
		ios.PrintEmpty("tags")
		return nil
	}

	plan := retention.Select(tags, retention.Policy{
		KeepSemver: opts.KeepSemver,
		KeepBuild:  opts.KeepBuild,
	})

	if len(plan.Delete) == 0 {
		fmt.Fprintf(ios.ErrOut, "Nothing to delete: all %d tags are within the retention policy.\n", len(tags))
		return nil
	}

	if !opts.DryRun && !opts.Force && ios.CanPrompt() {
		fmt.Fprintf(ios.ErrOut, "%s This will delete %d of %d tags from %s/%s.\nAre you sure you want to continue? [y/N] ",
			cs.WarningIcon(), len(plan.Delete), len(tags), opts.Registry, opts.Repository)
		reader := bufio.NewReader(ios.In)
		response, err := reader.ReadString('\n')
		if err != nil {
			// Treat read errors (EOF, etc.) as "no"
			fmt.Fprintln(ios.ErrOut, "Aborted.")
			return nil
		}
		response = strings.TrimSpace(response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(ios.ErrOut, "Aborted.")
			return nil
		}
	}

	sweeper := &sweep.Sweeper{Client: client, IO: ios}
	result := sweeper.Run(ctx, opts.Repository, plan, opts.DryRun)

	fmt.Fprintln(ios.ErrOut, result.Summary())

	if result.Failed > 0 {
		return &cmdutil.ExitError{Code: 3}
	}
	return nil
}
