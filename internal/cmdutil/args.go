package cmdutil

import (
	"github.com/spf13/cobra"
)

// NoArgs rejects any positional argument.
func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if cmd.HasSubCommands() {
		return FlagErrorf("%s: unknown command %q for %q", binName(cmd), args[0], cmd.CommandPath())
	}
	return FlagErrorf("%s: '%s' accepts no arguments", binName(cmd), cmd.CommandPath())
}

// RequiresMinArgs returns an error if there are fewer than minArgs args.
func RequiresMinArgs(minArgs int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) >= minArgs {
			return nil
		}
		return FlagErrorf("%s: '%s' requires at least %d %s",
			binName(cmd),
			cmd.CommandPath(),
			minArgs,
			pluralize("argument", minArgs),
		)
	}
}

// ExactArgs returns an error if there is not the exact number of args.
func ExactArgs(number int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == number {
			return nil
		}
		return FlagErrorf("%s: '%s' requires %d %s",
			binName(cmd),
			cmd.CommandPath(),
			number,
			pluralize("argument", number),
		)
	}
}

// binName returns the name of the root command (usually 'semlog').
func binName(cmd *cobra.Command) string {
	return cmd.Root().Name()
}

func pluralize(word string, number int) string {
	if number == 1 {
		return word
	}
	return word + "s"
}
