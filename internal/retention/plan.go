package retention

// Policy sets how many tags survive per category.
// The "latest" tag is always kept when present.
type Policy struct {
	KeepSemver int
	KeepBuild  int
}

// Plan is the keep/delete partition of a tag collection.
// Keep ∪ Delete equals the input collection and the two are disjoint;
// both preserve the input order.
type Plan struct {
	Keep   []string
	Delete []string
}

// IsKept reports whether tag is in the keep-set.
func (p Plan) IsKept(tag string) bool {
	for _, t := range p.Keep {
		if t == tag {
			return true
		}
	}
	return false
}

// Select computes the retention plan for a tag collection.
// The collection must be ordered newest first and deduplicated, as
// returned by the registry listing. Kept are: "latest" when present,
// the first KeepSemver semver tags, and the first KeepBuild build tags.
// Selection is purely positional; there is no secondary sort key.
func Select(tags []string, policy Policy) Plan {
	c := Classify(tags)

	kept := make(map[string]struct{})
	if c.HasLatest {
		kept[latestTag] = struct{}{}
	}
	for _, t := range firstN(c.Semver, policy.KeepSemver) {
		kept[t] = struct{}{}
	}
	for _, t := range firstN(c.Build, policy.KeepBuild) {
		kept[t] = struct{}{}
	}

	var plan Plan
	for _, t := range tags {
		if _, ok := kept[t]; ok {
			plan.Keep = append(plan.Keep, t)
		} else {
			plan.Delete = append(plan.Delete, t)
		}
	}
	return plan
}

func firstN(tags []string, n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(tags) {
		n = len(tags)
	}
	return tags[:n]
}
