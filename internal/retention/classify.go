// Package retention implements tag classification and keep/delete
// selection. All functions are pure and order-preserving: tags go in
// newest first and come out newest first.
package retention

import "regexp"

// Category describes which retention rule a tag falls under.
type Category string

const (
	// CategoryLatest is the literal "latest" tag.
	CategoryLatest Category = "latest"
	// CategorySemver is a release version: three or four dot-separated
	// numeric components (1.2.3 or 1.2.3.4).
	CategorySemver Category = "semver"
	// CategoryBuild is an alphanumeric build identifier of six or more
	// characters (commit SHAs, CI build ids).
	CategoryBuild Category = "build"
	// CategoryNone is anything else. Uncategorized tags are never kept.
	CategoryNone Category = "none"
)

const latestTag = "latest"

var (
	semverRe = regexp.MustCompile(`^\d+\.\d+\.\d+(\.\d+)?$`)
	buildRe  = regexp.MustCompile(`^[0-9a-zA-Z]{6,}$`)
)

// CategoryOf classifies a single tag. No normalization is applied:
// "Latest" or " latest" are not the latest tag.
func CategoryOf(tag string) Category {
	switch {
	case tag == latestTag:
		return CategoryLatest
	case semverRe.MatchString(tag):
		return CategorySemver
	case buildRe.MatchString(tag):
		return CategoryBuild
	default:
		return CategoryNone
	}
}

// Classification holds the per-category subsequences of a tag
// collection, each preserving the collection's relative order.
type Classification struct {
	HasLatest bool
	Semver    []string
	Build     []string
}

// Classify partitions tags into the category subsequences.
// The category patterns are mutually exclusive: semver requires dots,
// build forbids them, and "latest" is matched exactly.
func Classify(tags []string) Classification {
	var c Classification
	for _, t := range tags {
		switch CategoryOf(t) {
		case CategoryLatest:
			c.HasLatest = true
		case CategorySemver:
			c.Semver = append(c.Semver, t)
		case CategoryBuild:
			c.Build = append(c.Build, t)
		}
	}
	return c
}
