// Package acr implements the registry client on top of the Azure CLI.
// Listing and deletion shell out to "az acr repository" subcommands;
// the CLI's own login context supplies authentication.
package acr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/schmitthub/tagsweep/internal/logger"
	"github.com/schmitthub/tagsweep/internal/registry"
)

var _ registry.Client = (*Client)(nil)

// Client talks to an Azure Container Registry through the az CLI.
type Client struct {
	// Registry is the ACR name (not the login server hostname).
	Registry string

	// runCommand overrides command execution when non-nil.
	// Tests inject fake az output through it.
	runCommand func(ctx context.Context, args ...string) ([]byte, error)
}

// New creates a Client for the named registry.
func New(registry string) *Client {
	return &Client{Registry: registry}
}

// ListTags lists the repository's tags ordered newest first, via
// "az acr repository show-tags --orderby time_desc".
// A null or empty JSON response means zero tags.
func (c *Client) ListTags(ctx context.Context, repository string) ([]string, error) {
	out, err := c.run(ctx,
		"acr", "repository", "show-tags",
		"--name", c.Registry,
		"--repository", repository,
		"--orderby", "time_desc",
		"--output", "json",
	)
	if err != nil {
		return nil, fmt.Errorf("listing tags for %s/%s: %w", c.Registry, repository, err)
	}

	if len(bytes.TrimSpace(out)) == 0 {
		return nil, nil
	}

	var tags []string
	if err := json.Unmarshal(out, &tags); err != nil {
		return nil, fmt.Errorf("parsing tag list for %s/%s: %w", c.Registry, repository, err)
	}
	return tags, nil
}

// DeleteTag deletes repository:tag via "az acr repository delete --yes".
func (c *Client) DeleteTag(ctx context.Context, repository, tag string) error {
	_, err := c.run(ctx,
		"acr", "repository", "delete",
		"--name", c.Registry,
		"--image", repository+":"+tag,
		"--yes",
	)
	if err != nil {
		return fmt.Errorf("deleting %s:%s: %w", repository, tag, err)
	}
	return nil
}

func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	if c.runCommand != nil {
		return c.runCommand(ctx, args...)
	}

	logger.Debug().Str("args", strings.Join(args, " ")).Msg("running az")

	cmd := exec.CommandContext(ctx, "az", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("az %s: %s: %w", args[2], firstLine(msg), err)
		}
		return nil, fmt.Errorf("az %s: %w", args[2], err)
	}
	return stdout.Bytes(), nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
