package logger

import "github.com/rs/zerolog"

// Named is a delegate bound to one logger name. Every record carries the
// name under NameKey. The f variants use fmt-style verbs.
type Named struct {
	name    string
	backend *Backend
}

// Name returns the logger name.
func (n *Named) Name() string { return n.name }

// event starts a record at level against the backend's current root, so
// level changes apply to delegates handed out before them.
func (n *Named) event(level zerolog.Level) *zerolog.Event {
	return n.backend.logger().WithLevel(level).Str(NameKey, n.name)
}

func (n *Named) Debug(msg string) { n.event(zerolog.DebugLevel).Msg(msg) }

func (n *Named) Debugf(format string, args ...any) {
	n.event(zerolog.DebugLevel).Msgf(format, args...)
}

func (n *Named) DebugErr(msg string, err error) {
	n.event(zerolog.DebugLevel).Err(err).Msg(msg)
}

func (n *Named) Info(msg string) { n.event(zerolog.InfoLevel).Msg(msg) }

func (n *Named) Infof(format string, args ...any) {
	n.event(zerolog.InfoLevel).Msgf(format, args...)
}

func (n *Named) InfoErr(msg string, err error) {
	n.event(zerolog.InfoLevel).Err(err).Msg(msg)
}

func (n *Named) Warn(msg string) { n.event(zerolog.WarnLevel).Msg(msg) }

func (n *Named) Warnf(format string, args ...any) {
	n.event(zerolog.WarnLevel).Msgf(format, args...)
}

func (n *Named) WarnErr(msg string, err error) {
	n.event(zerolog.WarnLevel).Err(err).Msg(msg)
}

func (n *Named) Error(msg string) { n.event(zerolog.ErrorLevel).Msg(msg) }

func (n *Named) Errorf(format string, args ...any) {
	n.event(zerolog.ErrorLevel).Msgf(format, args...)
}

func (n *Named) ErrorErr(msg string, err error) {
	n.event(zerolog.ErrorLevel).Err(err).Msg(msg)
}
