package retention

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultPolicy = Policy{KeepSemver: 5, KeepBuild: 5}

func TestSelect_SixthSemverIsDeleted(t *testing.T) {
	tags := []string{"2.0.0", "1.9.9", "1.9.8", "1.9.7", "1.9.6", "1.9.5"}

	plan := Select(tags, defaultPolicy)

	assert.Equal(t, []string{"2.0.0", "1.9.9", "1.9.8", "1.9.7", "1.9.6"}, plan.Keep)
	assert.Equal(t, []string{"1.9.5"}, plan.Delete)
}

func TestSelect_LatestAlwaysKept(t *testing.T) {
	tags := []string{
		"9.0.0", "8.0.0", "7.0.0", "6.0.0", "5.0.0",
		"latest",
		"4.0.0", "3.0.0",
	}

	plan := Select(tags, defaultPolicy)

	assert.True(t, plan.IsKept("latest"))
	assert.Equal(t, []string{"4.0.0", "3.0.0"}, plan.Delete)
}

func TestSelect_FewerThanLimitAllKept(t *testing.T) {
	tags := []string{"1.0.1", "1.0.0", "abcdef"}

	plan := Select(tags, defaultPolicy)

	assert.Equal(t, tags, plan.Keep)
	assert.Empty(t, plan.Delete)
}

func TestSelect_PartitionIsCompleteAndDisjoint(t *testing.T) {
	tags := []string{
		"latest",
		"3.1.0", "3.0.9", "3.0.8", "3.0.7", "3.0.6", "3.0.5", "3.0.4",
		"ffeeddcc", "aabbccdd", "11223344", "55667788", "99aabbcc", "ddeeff00",
		"weird-tag", "rc",
	}

	plan := Select(tags, defaultPolicy)

	// Completeness: every input tag lands in exactly one set,
	// preserving input order across the partition.
	var merged []string
	ki, di := 0, 0
	for _, tag := range tags {
		switch {
		case ki < len(plan.Keep) && plan.Keep[ki] == tag:
			ki++
		case di < len(plan.Delete) && plan.Delete[di] == tag:
			di++
		default:
			t.Fatalf("tag %q missing or out of order in partition", tag)
		}
		merged = append(merged, tag)
	}
	require.Len(t, merged, len(tags))
	require.Equal(t, len(tags), len(plan.Keep)+len(plan.Delete))

	// Disjointness.
	for _, tag := range plan.Delete {
		assert.False(t, plan.IsKept(tag), "tag %q in both sets", tag)
	}
}

func TestSelect_PerCategoryLimits(t *testing.T) {
	tags := []string{
		"6.0.0", "5.0.0", "4.0.0", "3.0.0", "2.0.0", "1.0.0",
		"aaaaaa", "bbbbbb", "cccccc", "dddddd", "eeeeee", "ffffff",
	}

	plan := Select(tags, defaultPolicy)

	assert.Equal(t, []string{"1.0.0", "ffffff"}, plan.Delete)
}

func TestSelect_ConfigurableCounts(t *testing.T) {
	tags := []string{"3.0.0", "2.0.0", "1.0.0", "aaaaaa", "bbbbbb"}

	plan := Select(tags, Policy{KeepSemver: 1, KeepBuild: 1})

	assert.Equal(t, []string{"3.0.0", "aaaaaa"}, plan.Keep)
	assert.Equal(t, []string{"2.0.0", "1.0.0", "bbbbbb"}, plan.Delete)
}

func TestSelect_UncategorizedNeverKept(t *testing.T) {
	tags := []string{"v1.2.3", "1.2", "rc", "build-42"}

	plan := Select(tags, defaultPolicy)

	assert.Empty(t, plan.Keep)
	assert.Equal(t, tags, plan.Delete)
}

func TestSelect_Empty(t *testing.T) {
	plan := Select(nil, defaultPolicy)

	assert.Empty(t, plan.Keep)
	assert.Empty(t, plan.Delete)
}

func TestSelect_Deterministic(t *testing.T) {
	tags := []string{"latest", "2.0.0", "1.9.9", "deadbeef", "cafebabe", "oddball"}

	first := Select(tags, defaultPolicy)
	second := Select(tags, defaultPolicy)

	assert.Equal(t, first, second)
}

func TestSelect_ZeroAndNegativeCounts(t *testing.T) {
	tags := []string{"latest", "1.0.0", "aaaaaa"}

	plan := Select(tags, Policy{KeepSemver: 0, KeepBuild: -1})

	assert.Equal(t, []string{"latest"}, plan.Keep)
	assert.Equal(t, []string{"1.0.0", "aaaaaa"}, plan.Delete)
}
