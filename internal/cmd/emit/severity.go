package emit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/schmitthub/semanticlogger/pkg/semanticlogger"
)

// Severity selects one of the four semantic method families.
type Severity int

const (
	ForTestPurpose Severity = iota
	AsExpectedByDefault
	ToInvestigateTomorrow
	WakeMeUp
)

// Severities lists every severity in ascending order.
var Severities = []Severity{ForTestPurpose, AsExpectedByDefault, ToInvestigateTomorrow, WakeMeUp}

// String returns the command name for s.
func (s Severity) String() string {
	switch s {
	case ForTestPurpose:
		return "for-test-purpose"
	case AsExpectedByDefault:
		return "as-expected-by-default"
	case ToInvestigateTomorrow:
		return "to-investigate-tomorrow"
	case WakeMeUp:
		return "wake-me-up"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

func (s Severity) short() string {
	switch s {
	case ForTestPurpose:
		return "Log a message only useful while testing (debug)"
	case AsExpectedByDefault:
		return "Log a message about normal operation (info)"
	case ToInvestigateTomorrow:
		return "Log something to look at during working hours (warn)"
	case WakeMeUp:
		return "Log something that must page a human right now (error)"
	}
	return ""
}

// ParseSeverity accepts a command name or its classic level alias.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "for-test-purpose", "debug":
		return ForTestPurpose, nil
	case "as-expected-by-default", "info":
		return AsExpectedByDefault, nil
	case "to-investigate-tomorrow", "warn":
		return ToInvestigateTomorrow, nil
	case "wake-me-up", "error":
		return WakeMeUp, nil
	}
	return 0, fmt.Errorf("unknown severity %q", name)
}

// Emit sends msg through the method family chosen by s. With args the
// message is a format string; with errText the error variant is used.
func Emit(l *semanticlogger.Logger, s Severity, msg string, args []any, errText string) {
	plain, format, withErr := methods(l, s)
	switch {
	case errText != "":
		if len(args) > 0 {
			msg = fmt.Sprintf(msg, args...)
		}
		withErr(msg, errors.New(errText))
	case len(args) > 0:
		format(msg, args...)
	default:
		plain(msg)
	}
}

func methods(l *semanticlogger.Logger, s Severity) (func(string), func(string, ...any), func(string, error)) {
	switch s {
	case ForTestPurpose:
		return l.ForTestPurpose, l.ForTestPurposef, l.ForTestPurposeErr
	case ToInvestigateTomorrow:
		return l.ToInvestigateTomorrow, l.ToInvestigateTomorrowf, l.ToInvestigateTomorrowErr
	case WakeMeUp:
		return l.WakeMeUpInTheMiddleOfTheNight, l.WakeMeUpInTheMiddleOfTheNightf, l.WakeMeUpInTheMiddleOfTheNightErr
	default:
		return l.AsExpectedByDefault, l.AsExpectedByDefaultf, l.AsExpectedByDefaultErr
	}
}
