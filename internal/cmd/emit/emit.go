// Package emit implements the four semantic severity commands.
package emit

import (
	"context"

	"github.com/schmitthub/semanticlogger/internal/cmdutil"
	"github.com/schmitthub/semanticlogger/internal/iostreams"
	"github.com/schmitthub/semanticlogger/pkg/semanticlogger"
	"github.com/spf13/cobra"
)

// DefaultName is the logger name used when --name is not given.
const DefaultName = "semlog"

// EmitOptions holds options for a severity command.
type EmitOptions struct {
	IOStreams *iostreams.IOStreams
	Severity  Severity
	Name      string
	Error     string
	Message   string
	Args      []any
}

// NewCmdEmit creates the command for one severity.
func NewCmdEmit(f *cmdutil.Factory, s Severity, runF func(context.Context, *EmitOptions) error) *cobra.Command {
	opts := &EmitOptions{
		IOStreams: f.IOStreams,
		Severity:  s,
	}

	cmd := &cobra.Command{
		Use:   s.String() + " MESSAGE [ARGS...]",
		Short: s.short(),
		Long: `Logs MESSAGE through the semantic logger named by --name.

With ARGS, MESSAGE is a printf-style format string and ARGS fill its verbs.
With --error, the text is attached to the entry as its error field.`,
		Example: `  semlog ` + s.String() + ` "cache warmed"
  semlog ` + s.String() + ` --name billing "invoice %s sent" INV-42
  semlog ` + s.String() + ` --error "connection refused" "upstream unreachable"`,
		Args: cmdutil.RequiresMinArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Message = args[0]
			opts.Args = toAny(args[1:])
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return emitRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Name, "name", "n", DefaultName, "Logger name")
	cmd.Flags().StringVarP(&opts.Error, "error", "e", "", "Error text to attach")

	return cmd
}

func emitRun(_ context.Context, opts *EmitOptions) error {
	Emit(semanticlogger.FromName(opts.Name), opts.Severity, opts.Message, opts.Args, opts.Error)
	return nil
}

func toAny(args []string) []any {
	if len(args) == 0 {
		return nil
	}
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}
