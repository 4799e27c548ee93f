// Package api implements the registry client against the registry HTTP
// API directly, using go-containerregistry. Credentials are resolved
// through the default keychain (docker config and credential helpers),
// so any registry with a distribution-style API works.
package api

import (
	"context"
	"fmt"

	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/name"
	"github.com/google/go-containerregistry/pkg/v1/remote"

	"github.com/schmitthub/tagsweep/internal/logger"
	"github.com/schmitthub/tagsweep/internal/registry"
)

var _ registry.Client = (*Client)(nil)

// Client talks to a registry over its HTTP API.
// Unlike the acr backend, tag order is whatever the registry returns;
// most registries list tags lexically, not by push time.
type Client struct {
	// Registry is the registry host, e.g. "myregistry.azurecr.io"
	// or "localhost:5000".
	Registry string
	// Insecure allows plain-HTTP registries (local development).
	Insecure bool
}

// New creates a Client for the registry host.
func New(registry string, insecure bool) *Client {
	return &Client{Registry: registry, Insecure: insecure}
}

// ListTags lists the repository's tags via the tags/list endpoint.
func (c *Client) ListTags(ctx context.Context, repository string) ([]string, error) {
	repo, err := name.NewRepository(c.Registry+"/"+repository, c.nameOptions()...)
	if err != nil {
		return nil, fmt.Errorf("invalid repository %s/%s: %w", c.Registry, repository, err)
	}

	tags, err := remote.List(repo,
		remote.WithContext(ctx),
		remote.WithAuthFromKeychain(authn.DefaultKeychain),
	)
	if err != nil {
		return nil, fmt.Errorf("listing tags for %s: %w", repo.Name(), err)
	}

	logger.Debug().Str("repository", repo.Name()).Int("tags", len(tags)).Msg("listed tags")
	return tags, nil
}

// DeleteTag deletes repository:tag through the registry API.
// Registries that only support deletion by digest will reject this;
// the error is reported per tag by the caller.
func (c *Client) DeleteTag(ctx context.Context, repository, tag string) error {
	ref, err := name.ParseReference(c.Registry+"/"+repository+":"+tag, c.nameOptions()...)
	if err != nil {
		return fmt.Errorf("invalid reference %s/%s:%s: %w", c.Registry, repository, tag, err)
	}

	if err := remote.Delete(ref,
		remote.WithContext(ctx),
		remote.WithAuthFromKeychain(authn.DefaultKeychain),
	); err != nil {
		return fmt.Errorf("deleting %s: %w", ref.Name(), err)
	}
	return nil
}

func (c *Client) nameOptions() []name.Option {
	if c.Insecure {
		return []name.Option{name.Insecure}
	}
	return nil
}
