package semanticlogger

import (
	"sync/atomic"

	"github.com/schmitthub/semanticlogger/pkg/logger"
)

// Delegate is the logging backend a Logger forwards to. For each severity it
// accepts a plain message, a format string with positional arguments, and a
// message with an attached error. Argument substitution is the delegate's job.
//
// *logger.Named satisfies Delegate directly.
type Delegate interface {
	Debug(msg string)
	Debugf(format string, args ...any)
	DebugErr(msg string, err error)

	Info(msg string)
	Infof(format string, args ...any)
	InfoErr(msg string, err error)

	Warn(msg string)
	Warnf(format string, args ...any)
	WarnErr(msg string, err error)

	Error(msg string)
	Errorf(format string, args ...any)
	ErrorErr(msg string, err error)
}

// Backend resolves (or creates) the delegate registered under a name.
// Implementations must be safe for concurrent use.
type Backend interface {
	Named(name string) Delegate
}

// BackendFunc adapts a plain function to Backend.
type BackendFunc func(name string) Delegate

// Named calls f(name).
func (f BackendFunc) Named(name string) Delegate { return f(name) }

// backendHolder keeps atomic.Pointer typed on a single concrete type.
type backendHolder struct {
	b Backend
}

var current atomic.Pointer[backendHolder]

// SetBackend installs the backend used by FromType, For and FromName.
// Loggers created earlier keep the delegate they were bound to.
// Passing nil restores the default zerolog backend.
func SetBackend(b Backend) {
	if b == nil {
		current.Store(nil)
		return
	}
	current.Store(&backendHolder{b: b})
}

// CurrentBackend returns the installed backend, or the default one.
func CurrentBackend() Backend {
	if h := current.Load(); h != nil {
		return h.b
	}
	return zerologBackend(logger.Default())
}

// UseZerolog installs a configured zerolog backend.
func UseZerolog(b *logger.Backend) {
	if b == nil {
		SetBackend(nil)
		return
	}
	SetBackend(zerologBackend(b))
}

func zerologBackend(b *logger.Backend) Backend {
	return BackendFunc(func(name string) Delegate { return b.Named(name) })
}

// nopDelegate discards everything. It stands in for a missing delegate so
// that a zero Logger never panics.
type nopDelegate struct{}

func (nopDelegate) Debug(string)           {}
func (nopDelegate) Debugf(string, ...any)  {}
func (nopDelegate) DebugErr(string, error) {}
func (nopDelegate) Info(string)            {}
func (nopDelegate) Infof(string, ...any)   {}
func (nopDelegate) InfoErr(string, error)  {}
func (nopDelegate) Warn(string)            {}
func (nopDelegate) Warnf(string, ...any)   {}
func (nopDelegate) WarnErr(string, error)  {}
func (nopDelegate) Error(string)           {}
func (nopDelegate) Errorf(string, ...any)  {}
func (nopDelegate) ErrorErr(string, error) {}
