// Package factory wires the real dependency implementations into
// cmdutil.Factory. Called exactly once at the CLI entry point.
// Tests should NOT import this package — construct &cmdutil.Factory{}
// directly.
package factory

import (
	"fmt"
	"os"
	"sync"

	"github.com/schmitthub/tagsweep/internal/cmdutil"
	"github.com/schmitthub/tagsweep/internal/config"
	"github.com/schmitthub/tagsweep/internal/iostreams"
	"github.com/schmitthub/tagsweep/internal/registry"
	"github.com/schmitthub/tagsweep/internal/registry/acr"
	"github.com/schmitthub/tagsweep/internal/registry/api"
)

// New creates a fully-wired Factory with lazy-initialized dependency
// closures.
func New(version, commit string) *cmdutil.Factory {
	ios := iostreams.NewIOStreams()

	// Respect NO_COLOR and non-TTY output.
	if !ios.IsOutputTTY() || os.Getenv("NO_COLOR") != "" {
		ios.SetColorEnabled(false)
	}

	// Respect CI environment (disable prompts).
	if os.Getenv("CI") != "" {
		ios.SetNeverPrompt(true)
	}

	f := &cmdutil.Factory{
		Version:   version,
		Commit:    commit,
		IOStreams: ios,
	}

	// Settings are loaded once and cached.
	var (
		settingsOnce   sync.Once
		settingsLoader *config.SettingsLoader
		settings       *config.Settings
		settingsErr    error
	)
	loadSettings := func() {
		settingsOnce.Do(func() {
			settingsLoader, settingsErr = config.NewSettingsLoader()
			if settingsErr == nil {
				settings, settingsErr = settingsLoader.Load()
			}
		})
	}
	f.Settings = func() (*config.Settings, error) {
		loadSettings()
		return settings, settingsErr
	}
	f.SettingsLoader = func() (*config.SettingsLoader, error) {
		loadSettings()
		return settingsLoader, settingsErr
	}

	f.Client = func(backend, registryName string, insecure bool) (registry.Client, error) {
		switch backend {
		case "az":
			return acr.New(registryName), nil
		case "api":
			return api.New(registryName, insecure), nil
		default:
			return nil, fmt.Errorf("unknown registry backend %q (valid: az, api)", backend)
		}
	}

	return f
}
