// Package tagsweep holds the CLI entry point.
package tagsweep

import (
	"errors"
	"fmt"
	"io"

	"github.com/schmitthub/tagsweep/internal/cmd/factory"
	"github.com/schmitthub/tagsweep/internal/cmd/root"
	"github.com/schmitthub/tagsweep/internal/cmdutil"
	"github.com/schmitthub/tagsweep/internal/logger"
)

// Build-time variables injected via ldflags
var (
	Version = "dev"
	Commit  = "none"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Main is the entry point for the tagsweep CLI.
// It initializes the Factory, creates the root command, and executes it.
func Main() int {
	// Ensure logs are flushed on exit
	defer logger.CloseFileWriter()

	f := factory.New(Version, Commit)

	rootCmd := root.NewCmdRoot(f)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return exitOK
	}

	commandPath := rootCmd.CommandPath()
	if cmd != nil {
		commandPath = cmd.CommandPath()
	}

	return reportError(f.IOStreams.ErrOut, err, commandPath)
}

// reportError prints err the way the executed command expects and maps it
// to a process exit code. Commands that already reported their outcome
// return SilentError or an ExitError carrying the code.
func reportError(errOut io.Writer, err error, commandPath string) int {
	if errors.Is(err, cmdutil.SilentError) {
		return exitError
	}

	var exitErr *cmdutil.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	fmt.Fprintf(errOut, "Error: %v\n", err)

	var flagErr *cmdutil.FlagError
	if errors.As(err, &flagErr) {
		fmt.Fprintf(errOut, "Run '%s --help' for usage.\n", commandPath)
		return exitUsage
	}

	return exitError
}
