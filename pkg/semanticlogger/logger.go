package semanticlogger

// Logger forwards semantically named calls to a single Delegate bound at
// construction. Obtain one from For, FromType, FromName or FromDelegate.
//
// A Logger is safe for concurrent use as long as its delegate is. The zero
// Logger discards everything.
type Logger struct {
	delegate Delegate
}

func newLogger(d Delegate) *Logger {
	return &Logger{delegate: d}
}

// Delegate returns the delegate this Logger forwards to.
func (l *Logger) Delegate() Delegate {
	if l == nil {
		return nil
	}
	return l.delegate
}

func (l *Logger) target() Delegate {
	if l == nil || l.delegate == nil {
		return nopDelegate{}
	}
	return l.delegate
}

// RemindToRemoveUnusedImplementationAfter logs msg at error severity when the
// current local date is strictly after deadline, given as YYYY-MM-DD. On the
// deadline day and before it nothing is logged.
//
// A malformed deadline returns an error wrapping ErrInvalidDeadline and
// nothing is logged.
func (l *Logger) RemindToRemoveUnusedImplementationAfter(deadline, msg string) error {
	d, err := parseDeadline(deadline)
	if err != nil {
		return err
	}
	if pastDeadline(now(), d) {
		l.target().Error(msg)
	}
	return nil
}

// ForTestPurpose logs msg at debug severity.
func (l *Logger) ForTestPurpose(msg string) {
	l.target().Debug(msg)
}

// ForTestPurposef logs at debug severity, leaving substitution of args into
// format to the delegate.
func (l *Logger) ForTestPurposef(format string, args ...any) {
	l.target().Debugf(format, args...)
}

// ForTestPurposeErr logs msg with err attached at debug severity.
func (l *Logger) ForTestPurposeErr(msg string, err error) {
	l.target().DebugErr(msg, err)
}

// AsExpectedByDefault logs msg at info severity.
func (l *Logger) AsExpectedByDefault(msg string) {
	l.target().Info(msg)
}

// AsExpectedByDefaultf logs at info severity.
func (l *Logger) AsExpectedByDefaultf(format string, args ...any) {
	l.target().Infof(format, args...)
}

// AsExpectedByDefaultErr logs msg with err attached at info severity.
func (l *Logger) AsExpectedByDefaultErr(msg string, err error) {
	l.target().InfoErr(msg, err)
}

// ToInvestigateTomorrow logs msg at warn severity.
func (l *Logger) ToInvestigateTomorrow(msg string) {
	l.target().Warn(msg)
}

// ToInvestigateTomorrowf logs at warn severity.
func (l *Logger) ToInvestigateTomorrowf(format string, args ...any) {
	l.target().Warnf(format, args...)
}

// ToInvestigateTomorrowErr logs msg with err attached at warn severity.
func (l *Logger) ToInvestigateTomorrowErr(msg string, err error) {
	l.target().WarnErr(msg, err)
}

// WakeMeUpInTheMiddleOfTheNight logs msg at error severity.
func (l *Logger) WakeMeUpInTheMiddleOfTheNight(msg string) {
	l.target().Error(msg)
}

// WakeMeUpInTheMiddleOfTheNightf logs at error severity.
func (l *Logger) WakeMeUpInTheMiddleOfTheNightf(format string, args ...any) {
	l.target().Errorf(format, args...)
}

// WakeMeUpInTheMiddleOfTheNightErr logs msg with err attached at error severity.
func (l *Logger) WakeMeUpInTheMiddleOfTheNightErr(msg string, err error) {
	l.target().ErrorErr(msg, err)
}
