// Package registry defines the narrow contract tagsweep needs from a
// container registry: list the tags of a repository and delete one tag.
// Implementations live in the acr and api subpackages; registrytest
// provides an in-memory fake.
package registry

import "context"

// Client is the registry collaborator.
type Client interface {
	// ListTags returns the repository's tags ordered newest first.
	// An empty slice means the repository has no tags; implementations
	// should also return an empty slice (with an error) for missing
	// repositories so callers can apply their own soft-failure policy.
	ListTags(ctx context.Context, repository string) ([]string, error)

	// DeleteTag deletes a single tag from the repository. The image
	// data itself is untouched when other tags still reference it.
	DeleteTag(ctx context.Context, repository, tag string) error
}
