package cmdutil

import (
	"github.com/spf13/cobra"
)

// NoArgs validates that a command received no positional arguments.
func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return FlagErrorf(
		"'%s' accepts no arguments\n\nUsage:  %s",
		cmd.CommandPath(),
		cmd.UseLine(),
	)
}

// ExactArgs validates that a command received exactly n positional
// arguments. The returned error is a FlagError, so Main() exits with
// the usage status code.
func ExactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == n {
			return nil
		}
		return FlagErrorf(
			"'%s' requires exactly %d %s\n\nUsage:  %s",
			cmd.CommandPath(),
			n,
			pluralize("argument", n),
			cmd.UseLine(),
		)
	}
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
