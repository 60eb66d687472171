// Package pipe implements "semlog pipe", which logs each line read from
// standard input.
package pipe

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/schmitthub/semanticlogger/internal/cmd/emit"
	"github.com/schmitthub/semanticlogger/internal/cmdutil"
	"github.com/schmitthub/semanticlogger/internal/config"
	"github.com/schmitthub/semanticlogger/internal/iostreams"
	"github.com/schmitthub/semanticlogger/internal/text"
	"github.com/schmitthub/semanticlogger/pkg/logger"
	"github.com/schmitthub/semanticlogger/pkg/semanticlogger"
	"github.com/spf13/cobra"
)

// PipeOptions holds options for the pipe command.
type PipeOptions struct {
	IOStreams    *iostreams.IOStreams
	Backend      func() *logger.Backend
	ConfigLoader func() (*config.Loader, error)

	Name      string
	Severity  string
	Watch     bool
	StripANSI bool
	MaxLength int
}

// maxLineBytes bounds a single input line; longer lines fail the read.
const maxLineBytes = 1024 * 1024

// NewCmdPipe creates the pipe command.
func NewCmdPipe(f *cmdutil.Factory, runF func(context.Context, *PipeOptions) error) *cobra.Command {
	opts := &PipeOptions{
		IOStreams:    f.IOStreams,
		Backend:      f.Backend,
		ConfigLoader: f.ConfigLoader,
	}

	cmd := &cobra.Command{
		Use:   "pipe",
		Short: "Log every line read from standard input",
		Long: `Reads standard input line by line and logs each non-blank line at the
severity given by --severity. Colour codes and other terminal escape
sequences are removed unless --strip-ansi=false.

With --watch, edits to the configuration file change the log level of the
running pipe without restarting it.`,
		Example: `  ./build.sh 2>&1 | semlog pipe --name build
  tail -f app.out | semlog pipe --severity to-investigate-tomorrow --watch`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return pipeRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Name, "name", "n", emit.DefaultName, "Logger name")
	cmd.Flags().StringVarP(&opts.Severity, "severity", "s", emit.AsExpectedByDefault.String(), "Severity for every line")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Reload the log level when the config file changes")
	cmd.Flags().BoolVar(&opts.StripANSI, "strip-ansi", true, "Remove terminal escape sequences from each line")
	cmd.Flags().IntVar(&opts.MaxLength, "max-length", 0, "Truncate messages to this many characters (0 = unlimited)")

	return cmd
}

func pipeRun(ctx context.Context, opts *PipeOptions) error {
	sev, err := emit.ParseSeverity(opts.Severity)
	if err != nil {
		return cmdutil.FlagErrorWrap(err)
	}

	l := semanticlogger.FromName(opts.Name)
	if opts.Watch {
		watchLevel(opts)
	}

	lines, errc := scanLines(ctx, opts.IOStreams.In)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				return nil
			}
			if msg, ok := clean(line, opts); ok {
				emit.Emit(l, sev, msg, nil, "")
			}
		}
	}
}

// scanLines reads r on its own goroutine so a blocked read does not delay
// cancellation. errc receives exactly one value once lines is closed.
func scanLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- sc.Err()
	}()

	return lines, errc
}

// clean turns a raw input line into a message; ok is false for lines with
// nothing visible.
func clean(line string, opts *PipeOptions) (string, bool) {
	line = strings.TrimRight(line, "\r")
	if opts.StripANSI {
		line = text.StripControl(text.StripANSI(line))
	}
	if text.IsBlank(line) {
		return "", false
	}
	return text.Truncate(line, opts.MaxLength), true
}

// watchLevel applies the level of every config file change to the backend.
// Failing to watch is not fatal; the pipe keeps its current level.
func watchLevel(opts *PipeOptions) {
	diag := semanticlogger.FromName(emit.DefaultName)
	backend := opts.Backend()

	loader, err := opts.ConfigLoader()
	if err != nil {
		diag.ToInvestigateTomorrowErr("config watch unavailable", err)
		return
	}

	err = loader.Watch(func(cfg *logger.Config, err error) {
		if err != nil {
			diag.ToInvestigateTomorrowErr("ignoring invalid config change", err)
			return
		}
		if err := backend.SetLevel(cfg.Level); err != nil {
			diag.ToInvestigateTomorrowErr("ignoring invalid log level", err)
			return
		}
		diag.ForTestPurposef("log level set to %s", backend.Level())
	})
	if err != nil {
		diag.ToInvestigateTomorrowErr("config watch unavailable", err)
	}
}
