// Package iostreams wraps the standard streams used by the semlog command.
package iostreams

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IOStreams provides access to standard input/output/error streams.
// A struct literal is non-interactive with colors disabled, which is what
// tests want; NewIOStreams enables detection.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// isStderrTTY caches detection: -1 = unchecked, 0 = false, 1 = true
	isStderrTTY int

	// colorEnabled: -1 = auto (stderr is a TTY and NO_COLOR unset), 0 = off, 1 = on
	colorEnabled int
}

// NewIOStreams creates an IOStreams connected to the process streams.
func NewIOStreams() *IOStreams {
	return &IOStreams{
		In:           os.Stdin,
		Out:          os.Stdout,
		ErrOut:       os.Stderr,
		isStderrTTY:  -1,
		colorEnabled: -1,
	}
}

// IsStderrTTY returns true if stderr is a terminal.
func (s *IOStreams) IsStderrTTY() bool {
	if s.isStderrTTY == -1 {
		s.isStderrTTY = boolToInt(isTerminal(s.ErrOut))
	}
	return s.isStderrTTY == 1
}

// ColorEnabled reports whether status messages on stderr are colored.
func (s *IOStreams) ColorEnabled() bool {
	if s.colorEnabled == -1 {
		return os.Getenv("NO_COLOR") == "" && s.IsStderrTTY()
	}
	return s.colorEnabled == 1
}

// SetColorEnabled explicitly enables or disables color output.
func (s *IOStreams) SetColorEnabled(enabled bool) {
	s.colorEnabled = boolToInt(enabled)
}

// ColorScheme returns a ColorScheme configured for this IOStreams.
func (s *IOStreams) ColorScheme() *ColorScheme {
	return NewColorScheme(s.ColorEnabled())
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
