// Package tags provides the tags command: list a repository's tags
// with their classification and what a clean run would do to them.
package tags

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/schmitthub/tagsweep/internal/cmdutil"
	"github.com/schmitthub/tagsweep/internal/iostreams"
	"github.com/schmitthub/tagsweep/internal/registry"
	"github.com/schmitthub/tagsweep/internal/retention"
	"github.com/spf13/cobra"
)

// Options holds options for the tags command.
type Options struct {
	IOStreams *iostreams.IOStreams
	Client    func(backend, registryName string, insecure bool) (registry.Client, error)

	Registry   string
	Repository string

	KeepSemver int
	KeepBuild  int
	Backend    string
	Insecure   bool
	JSON       bool
	Quiet      bool
}

// tagRow is the data structure exposed to --json output.
type tagRow struct {
	Tag      string `json:"tag"`
	Category string `json:"category"`
	Action   string `json:"action"`
}

// NewCmdTags creates the tags command.
func NewCmdTags(f *cmdutil.Factory, runF func(context.Context, *Options) error) *cobra.Command {
	opts := &Options{
		IOStreams: f.IOStreams,
		Client:    f.Client,
	}

	cmd := &cobra.Command{
		Use:     "tags <registry> <repository>",
		Aliases: []string{"ls"},
		Short:   "List tags and their retention disposition",
		Long: `Lists a repository's tags, newest first, with each tag's
classification and whether a clean run would keep or delete it.

This command is read-only; it never deletes anything.`,
		Example: `  # Show the retention plan for a repository
  tagsweep tags myregistry myapp

  # Raw tag names only
  tagsweep tags myregistry myapp -q

  # Machine-readable output
  tagsweep tags myregistry myapp --json`,
		Args: cmdutil.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Registry = args[0]
			opts.Repository = args[1]

			if opts.Quiet && opts.JSON {
				return cmdutil.FlagErrorf("--quiet and --json are mutually exclusive")
			}

			settings, err := f.Settings()
			if err != nil {
				return err
			}
			cmdutil.ApplyRetentionDefaults(cmd.Flags(), settings, &opts.KeepSemver, &opts.KeepBuild, &opts.Backend)

			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return tagsRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.KeepSemver, "keep-semver", 0, "How many semantic-version tags to keep (default from settings)")
	cmd.Flags().IntVar(&opts.KeepBuild, "keep-build", 0, "How many build tags to keep (default from settings)")
	cmd.Flags().StringVar(&opts.Backend, "backend", "", "Registry backend: az or api (default from settings)")
	cmd.Flags().BoolVar(&opts.Insecure, "insecure", false, "Allow plain HTTP (api backend only)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Only print tag names")

	return cmd
}

func tagsRun(ctx context.Context, opts *Options) error {
	ios := opts.IOStreams

	client, err := opts.Client(opts.Backend, opts.Registry, opts.Insecure)
	if err != nil {
		return err
	}

	tags, err := client.ListTags(ctx, opts.Repository)
	if err != nil {
		return fmt.Errorf("listing tags for %s/%s: %w", opts.Registry, opts.Repository, err)
	}

	if len(tags) == 0 {
		ios.PrintEmpty("tags")
		return nil
	}

	if opts.Quiet {
		for _, tag := range tags {
			fmt.Fprintln(ios.Out, tag)
		}
		return nil
	}

	plan := retention.Select(tags, retention.Policy{
		KeepSemver: opts.KeepSemver,
		KeepBuild:  opts.KeepBuild,
	})

	rows := make([]tagRow, 0, len(tags))
	for _, tag := range tags {
		action := "delete"
		if plan.IsKept(tag) {
			action = "keep"
		}
		rows = append(rows, tagRow{
			Tag:      tag,
			Category: string(retention.CategoryOf(tag)),
			Action:   action,
		})
	}

	if opts.JSON {
		enc := json.NewEncoder(ios.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	cs := ios.ColorScheme()
	tp := ios.NewTablePrinter("TAG", "CATEGORY", "ACTION")
	for _, row := range rows {
		action := row.Action
		if ios.ColorEnabled() {
			if row.Action == "keep" {
				action = cs.Green(action)
			} else {
				action = cs.Red(action)
			}
		}
		tp.AddRow(row.Tag, row.Category, action)
	}
	return tp.Render()
}
