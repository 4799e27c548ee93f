// Package sweep executes a retention plan against a registry:
// sequential per-tag deletion with no retries, continuing past
// failures, or a dry run that only enumerates the delete-set.
package sweep

import (
	"context"
	"fmt"

	"github.com/schmitthub/tagsweep/internal/iostreams"
	"github.com/schmitthub/tagsweep/internal/logger"
	"github.com/schmitthub/tagsweep/internal/registry"
	"github.com/schmitthub/tagsweep/internal/retention"
)

// Result summarizes one sweep run.
type Result struct {
	// Kept is the size of the keep-set.
	Kept int
	// Planned is the size of the delete-set.
	Planned int
	// Deleted counts successful deletions.
	Deleted int
	// Failed counts per-tag deletion failures.
	Failed int
	// DryRun reports whether this was a dry run.
	DryRun bool
}

// Sweeper deletes the plan's delete-set from a repository.
type Sweeper struct {
	Client registry.Client
	IO     *iostreams.IOStreams
}

// Run executes the plan. In dry-run mode it prints every tag that
// would be deleted without touching the registry. In live mode it
// deletes tags one at a time in plan order; each failure is reported
// and counted, and the run continues with the remaining tags.
func (s *Sweeper) Run(ctx context.Context, repository string, plan retention.Plan, dryRun bool) Result {
	result := Result{Kept: len(plan.Keep), Planned: len(plan.Delete), DryRun: dryRun}
	cs := s.IO.ColorScheme()

	if dryRun {
		for _, tag := range plan.Delete {
			fmt.Fprintf(s.IO.Out, "would delete %s:%s\n", repository, tag)
		}
		return result
	}

	for _, tag := range plan.Delete {
		if err := s.Client.DeleteTag(ctx, repository, tag); err != nil {
			result.Failed++
			logger.Error().Err(err).Str("repository", repository).Str("tag", tag).Msg("delete failed")
			fmt.Fprintf(s.IO.ErrOut, "%s Failed: %s:%s (%v)\n", cs.FailureIcon(), repository, tag, err)
			continue
		}
		result.Deleted++
		fmt.Fprintf(s.IO.ErrOut, "%s Deleted: %s:%s\n", cs.SuccessIcon(), repository, tag)
	}

	return result
}

// Summary returns the one-line run summary.
func (r Result) Summary() string {
	if r.DryRun {
		return fmt.Sprintf("dry run: %d kept, %d would be deleted", r.Kept, r.Planned)
	}
	return fmt.Sprintf("%d kept, %d deleted, %d failed", r.Kept, r.Deleted, r.Failed)
}
