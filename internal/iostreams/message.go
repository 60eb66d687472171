package iostreams

import "fmt"

// PrintSuccess prints a success message to stderr.
func (s *IOStreams) PrintSuccess(format string, args ...any) error {
	_, err := fmt.Fprintln(s.ErrOut, s.ColorScheme().SuccessIconWithColor(fmt.Sprintf(format, args...)))
	return err
}

// PrintWarning prints a warning message to stderr.
func (s *IOStreams) PrintWarning(format string, args ...any) error {
	_, err := fmt.Fprintln(s.ErrOut, s.ColorScheme().WarningIconWithColor(fmt.Sprintf(format, args...)))
	return err
}

// PrintInfo prints an informational message to stderr.
func (s *IOStreams) PrintInfo(format string, args ...any) error {
	_, err := fmt.Fprintln(s.ErrOut, s.ColorScheme().InfoIconWithColor(fmt.Sprintf(format, args...)))
	return err
}

// PrintFailure prints an error message to stderr.
func (s *IOStreams) PrintFailure(format string, args ...any) error {
	_, err := fmt.Fprintln(s.ErrOut, s.ColorScheme().FailureIconWithColor(fmt.Sprintf(format, args...)))
	return err
}
