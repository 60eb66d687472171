// Package remind implements "semlog remind".
package remind

import (
	"context"
	"strings"

	"github.com/schmitthub/semanticlogger/internal/cmd/emit"
	"github.com/schmitthub/semanticlogger/internal/cmdutil"
	"github.com/schmitthub/semanticlogger/internal/iostreams"
	"github.com/schmitthub/semanticlogger/pkg/semanticlogger"
	"github.com/spf13/cobra"
)

// RemindOptions holds options for the remind command.
type RemindOptions struct {
	IOStreams *iostreams.IOStreams
	Name      string
	Deadline  string
	Message   string
}

// NewCmdRemind creates the remind command.
func NewCmdRemind(f *cmdutil.Factory, runF func(context.Context, *RemindOptions) error) *cobra.Command {
	opts := &RemindOptions{
		IOStreams: f.IOStreams,
	}

	cmd := &cobra.Command{
		Use:   "remind --deadline YYYY-MM-DD MESSAGE...",
		Short: "Log an error once a removal deadline has passed",
		Long: `Logs MESSAGE at error level when today's date is after --deadline.
Several words are joined with spaces. On or before the deadline nothing
is logged.

Drop it next to code that should be deleted by a certain date so the
reminder surfaces in the logs once that date has gone by.`,
		Example: `  semlog remind --deadline 2026-12-31 "drop the v1 export path"`,
		Args:    cmdutil.RequiresMinArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Message = strings.Join(args, " ")
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return remindRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Deadline, "deadline", "d", "", "Last day (YYYY-MM-DD) the reminder stays quiet")
	cmd.Flags().StringVarP(&opts.Name, "name", "n", emit.DefaultName, "Logger name")
	_ = cmd.MarkFlagRequired("deadline")

	return cmd
}

func remindRun(_ context.Context, opts *RemindOptions) error {
	l := semanticlogger.FromName(opts.Name)
	if err := l.RemindToRemoveUnusedImplementationAfter(opts.Deadline, opts.Message); err != nil {
		return cmdutil.FlagErrorWrap(err)
	}
	return nil
}
