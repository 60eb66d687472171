package root

import (
	"fmt"

	"github.com/schmitthub/semanticlogger/internal/cmd/emit"
	"github.com/schmitthub/semanticlogger/internal/cmdutil"
	"github.com/spf13/cobra"
)

// Alias defines a top-level shortcut for a command under a familiar name.
// Each alias creates a new command instance from the factory, overriding only
// Use and optionally Example, while inheriting flags and RunE.
type Alias struct {
	// Use sets the command's Use field (required)
	Use string
	// Example optionally replaces the command's Example field
	Example string
	// Command is a factory function that creates the target command
	Command func(*cmdutil.Factory) *cobra.Command
}

func severityCmd(s emit.Severity) func(*cmdutil.Factory) *cobra.Command {
	return func(f *cmdutil.Factory) *cobra.Command { return emit.NewCmdEmit(f, s, nil) }
}

// topLevelAliases maps the classic level names onto the semantic commands.
var topLevelAliases = []Alias{
	{
		Use:     "debug MESSAGE [ARGS...]",
		Example: `  semlog debug "cache %s" warm`,
		Command: severityCmd(emit.ForTestPurpose),
	},
	{
		Use:     "info MESSAGE [ARGS...]",
		Example: `  semlog info --name billing "invoice sent"`,
		Command: severityCmd(emit.AsExpectedByDefault),
	},
	{
		Use:     "warn MESSAGE [ARGS...]",
		Example: `  semlog warn --error "429 Too Many Requests" "rate limited"`,
		Command: severityCmd(emit.ToInvestigateTomorrow),
	},
	{
		Use:     "error MESSAGE [ARGS...]",
		Example: `  semlog error "ledger mismatch"`,
		Command: severityCmd(emit.WakeMeUp),
	},
}

// registerAliases adds all top-level aliases to the root command. Aliases
// are hidden so help lists only the semantic names.
func registerAliases(root *cobra.Command, f *cmdutil.Factory) {
	for _, alias := range topLevelAliases {
		if alias.Use == "" {
			panic("alias has empty Use field")
		}
		if alias.Command == nil {
			panic(fmt.Sprintf("alias %q has nil Command factory", alias.Use))
		}
		cmd := alias.Command(f)
		if cmd == nil {
			panic(fmt.Sprintf("alias %q factory returned nil command", alias.Use))
		}
		cmd.Use = alias.Use
		if alias.Example != "" {
			cmd.Example = alias.Example
		}
		cmd.Hidden = true
		root.AddCommand(cmd)
	}
}
