// Package semlog wires the semlog command-line entry point.
package semlog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/schmitthub/semanticlogger/internal/cmd/factory"
	"github.com/schmitthub/semanticlogger/internal/cmd/root"
	"github.com/schmitthub/semanticlogger/internal/cmdutil"
	"github.com/schmitthub/semanticlogger/internal/signals"
)

// Build-time variables injected via ldflags
var (
	Version   = "dev"
	BuildDate = ""
)

// closeTimeout bounds flushing of buffered OTLP records on exit.
const closeTimeout = 5 * time.Second

// Main is the entry point for the semlog CLI. It returns the process exit
// code so deferred cleanup runs before os.Exit.
func Main() int {
	ctx, cancel := signals.SetupSignalContext(context.Background())
	defer cancel()

	f := factory.New(Version, BuildDate)
	defer closeBackend(f)

	rootCmd := root.NewCmdRoot(f, Version, BuildDate)
	rootCmd.SilenceErrors = true

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if sd, ok := signals.FromContext(ctx); ok && err != nil {
		return sd.ExitCode()
	}
	if err != nil && !errors.Is(err, cmdutil.SilentError) {
		fmt.Fprintf(f.IOStreams.ErrOut, "Error: %s\n", err)

		var flagErr *cmdutil.FlagError
		if errors.As(err, &flagErr) {
			fmt.Fprintf(f.IOStreams.ErrOut, "\n%s", cmd.UsageString())
		}
	}

	return cmdutil.ExitCode(err)
}

func closeBackend(f *cmdutil.Factory) {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err := f.CloseBackend(ctx); err != nil {
		fmt.Fprintf(f.IOStreams.ErrOut, "semlog: failed to flush logs: %s\n", err)
	}
}
