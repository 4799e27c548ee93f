package retention

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		tag  string
		want Category
	}{
		{"latest", CategoryLatest},
		{"1.2.3", CategorySemver},
		{"0.0.1", CategorySemver},
		{"10.20.30", CategorySemver},
		{"1.2.3.4", CategorySemver},
		{"1.2", CategoryNone},
		{"1.2.3.4.5", CategoryNone},
		{"v1.2.3", CategoryNone},
		{"1.2.3-rc1", CategoryNone},
		{"abcdef", CategoryBuild},
		{"abc12", CategoryNone}, // 5 chars, too short
		{"123456", CategoryBuild},
		{"deadbeefcafe", CategoryBuild},
		{"Latest", CategoryBuild}, // not the literal, but 6 alnum chars
		{"build-42", CategoryNone},
		{"", CategoryNone},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryOf(tt.tag))
		})
	}
}

func TestCategoriesAreExclusive(t *testing.T) {
	// Semver requires dots, build forbids them; no tag can land
	// in both categories.
	for _, tag := range []string{"latest", "1.2.3", "1.2.3.4", "abcdef", "123456", "1234567890"} {
		matches := 0
		if tag == "latest" {
			matches++
		}
		if semverRe.MatchString(tag) {
			matches++
		}
		if tag != "latest" && buildRe.MatchString(tag) {
			matches++
		}
		assert.Equal(t, 1, matches, "tag %q should match exactly one category", tag)
	}
}

func TestClassify_PreservesOrder(t *testing.T) {
	tags := []string{"2.0.0", "zyxwvu", "1.9.9", "latest", "abcdef", "1.9.8", "nope"}

	c := Classify(tags)

	assert.True(t, c.HasLatest)
	assert.Equal(t, []string{"2.0.0", "1.9.9", "1.9.8"}, c.Semver)
	assert.Equal(t, []string{"zyxwvu", "abcdef"}, c.Build)
}

func TestClassify_Empty(t *testing.T) {
	c := Classify(nil)

	assert.False(t, c.HasLatest)
	assert.Empty(t, c.Semver)
	assert.Empty(t, c.Build)
}
