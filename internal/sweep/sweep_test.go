package sweep

import (
	"context"
	"errors"
	"testing"

	"github.com/schmitthub/tagsweep/internal/iostreams/iostreamstest"
	"github.com/schmitthub/tagsweep/internal/registry/registrytest"
	"github.com/schmitthub/tagsweep/internal/retention"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_DryRunNeverDeletes(t *testing.T) {
	fake := registrytest.New()
	tio := iostreamstest.New()
	s := &Sweeper{Client: fake, IO: tio.IOStreams}

	plan := retention.Plan{
		Keep:   []string{"latest", "2.0.0"},
		Delete: []string{"1.9.5", "oldbuild99", "stray"},
	}

	result := s.Run(context.Background(), "myapp", plan, true)

	assert.Zero(t, fake.DeleteCalls, "dry run must not invoke the delete API")
	assert.Equal(t, Result{Kept: 2, Planned: 3, DryRun: true}, result)

	// Dry run output literally enumerates every delete-set tag.
	out := tio.OutBuf.String()
	assert.Contains(t, out, "would delete myapp:1.9.5")
	assert.Contains(t, out, "would delete myapp:oldbuild99")
	assert.Contains(t, out, "would delete myapp:stray")
}

func TestRun_DeletesInPlanOrder(t *testing.T) {
	fake := registrytest.New()
	tio := iostreamstest.New()
	s := &Sweeper{Client: fake, IO: tio.IOStreams}

	plan := retention.Plan{
		Keep:   []string{"latest"},
		Delete: []string{"1.9.5", "1.9.4", "1.9.3"},
	}

	result := s.Run(context.Background(), "myapp", plan, false)

	assert.Equal(t, []string{"1.9.5", "1.9.4", "1.9.3"}, fake.Deleted)
	assert.Equal(t, Result{Kept: 1, Planned: 3, Deleted: 3}, result)
	assert.Contains(t, tio.ErrBuf.String(), "Deleted: myapp:1.9.5")
}

func TestRun_ContinuesPastFailures(t *testing.T) {
	fake := registrytest.New()
	fake.DeleteErrs = map[string]error{"1.9.4": errors.New("manifest locked")}
	tio := iostreamstest.New()
	s := &Sweeper{Client: fake, IO: tio.IOStreams}

	plan := retention.Plan{Delete: []string{"1.9.5", "1.9.4", "1.9.3"}}

	result := s.Run(context.Background(), "myapp", plan, false)

	require.Equal(t, 3, fake.DeleteCalls)
	assert.Equal(t, []string{"1.9.5", "1.9.3"}, fake.Deleted)
	assert.Equal(t, 2, result.Deleted)
	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, tio.ErrBuf.String(), "Failed: myapp:1.9.4")
}

func TestRun_EmptyPlan(t *testing.T) {
	fake := registrytest.New()
	tio := iostreamstest.New()
	s := &Sweeper{Client: fake, IO: tio.IOStreams}

	result := s.Run(context.Background(), "myapp", retention.Plan{}, false)

	assert.Zero(t, fake.DeleteCalls)
	assert.Equal(t, Result{}, result)
	assert.Empty(t, tio.OutBuf.String())
	assert.Empty(t, tio.ErrBuf.String())
}

func TestResult_Summary(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{
			name:   "live",
			result: Result{Kept: 6, Deleted: 3, Failed: 1},
			want:   "6 kept, 3 deleted, 1 failed",
		},
		{
			name:   "dry run",
			result: Result{Kept: 6, Planned: 4, DryRun: true},
			want:   "dry run: 6 kept, 4 would be deleted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Summary())
		})
	}
}
