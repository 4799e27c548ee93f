// Package cmdutil provides shared command plumbing: the dependency
// factory and the CLI error taxonomy.
package cmdutil

import (
	"github.com/schmitthub/tagsweep/internal/config"
	"github.com/schmitthub/tagsweep/internal/iostreams"
	"github.com/schmitthub/tagsweep/internal/registry"
)

// Factory provides shared dependencies for CLI commands.
// It is a dependency injection container: the struct defines what
// dependencies exist, while internal/cmd/factory wires the real
// implementations. Commands extract only the fields they need into
// per-command Options structs; tests construct a bare &Factory{}.
type Factory struct {
	// Version info (set at build time via ldflags)
	Version string
	Commit  string

	// IO streams for input/output (for testability)
	IOStreams *iostreams.IOStreams

	// Settings loads user settings (lazy, cached).
	Settings func() (*config.Settings, error)

	// SettingsLoader exposes the loader itself, for commands that
	// write settings.
	SettingsLoader func() (*config.SettingsLoader, error)

	// Client returns a registry client for the named registry.
	// backend is "az" or "api"; insecure only applies to "api".
	Client func(backend, registryName string, insecure bool) (registry.Client, error)
}
