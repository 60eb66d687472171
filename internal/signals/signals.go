// Package signals turns SIGINT and SIGTERM into context cancellation so
// commands stop reading input and the logging backend flushes before exit.
// Leaf package: stdlib only, no internal imports, no logging.
package signals

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

var shutdownSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// ShutdownError is the cancellation cause of a context set up by
// SetupSignalContext when a signal arrived.
type ShutdownError struct {
	Signal os.Signal
}

func (e *ShutdownError) Error() string {
	return "received " + e.Signal.String()
}

// ExitCode follows the shell convention of 128 plus the signal number.
func (e *ShutdownError) ExitCode() int {
	if s, ok := e.Signal.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}

// SetupSignalContext creates a context that's canceled on SIGINT/SIGTERM.
// context.Cause reports a *ShutdownError in that case.
func SetupSignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, shutdownSignals...)

	go func() {
		select {
		case sig := <-sigChan:
			cancel(&ShutdownError{Signal: sig})
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, func() { cancel(nil) }
}

// FromContext returns the signal that canceled ctx, if any.
func FromContext(ctx context.Context) (*ShutdownError, bool) {
	var sd *ShutdownError
	if errors.As(context.Cause(ctx), &sd) {
		return sd, true
	}
	return nil, false
}
