// Package semanticloggertest provides a recording Delegate for tests.
package semanticloggertest

import (
	"sync"

	"github.com/schmitthub/semanticlogger/pkg/semanticlogger"
)

// Level is the severity a call was forwarded to.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Kind tells which delegate signature was used.
type Kind int

const (
	// KindMessage is S(msg).
	KindMessage Kind = iota
	// KindFormat is Sf(format, args...).
	KindFormat
	// KindError is SErr(msg, err).
	KindError
)

// Call is one recorded delegate invocation. Msg holds the format string for
// KindFormat calls; Args is the slice exactly as received.
type Call struct {
	Level Level
	Kind  Kind
	Msg   string
	Args  []any
	Err   error
}

// Recorder is a Delegate that records every call. Safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

var _ semanticlogger.Delegate = (*Recorder)(nil)

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

// Calls returns a copy of all recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// CallsAt returns the recorded calls at level.
func (r *Recorder) CallsAt(level Level) []Call {
	var out []Call
	for _, c := range r.Calls() {
		if c.Level == level {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

func (r *Recorder) record(c Call) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}

func (r *Recorder) Debug(msg string) {
	r.record(Call{Level: LevelDebug, Kind: KindMessage, Msg: msg})
}

func (r *Recorder) Debugf(format string, args ...any) {
	r.record(Call{Level: LevelDebug, Kind: KindFormat, Msg: format, Args: args})
}

func (r *Recorder) DebugErr(msg string, err error) {
	r.record(Call{Level: LevelDebug, Kind: KindError, Msg: msg, Err: err})
}

func (r *Recorder) Info(msg string) {
	r.record(Call{Level: LevelInfo, Kind: KindMessage, Msg: msg})
}

func (r *Recorder) Infof(format string, args ...any) {
	r.record(Call{Level: LevelInfo, Kind: KindFormat, Msg: format, Args: args})
}

func (r *Recorder) InfoErr(msg string, err error) {
	r.record(Call{Level: LevelInfo, Kind: KindError, Msg: msg, Err: err})
}

func (r *Recorder) Warn(msg string) {
	r.record(Call{Level: LevelWarn, Kind: KindMessage, Msg: msg})
}

func (r *Recorder) Warnf(format string, args ...any) {
	r.record(Call{Level: LevelWarn, Kind: KindFormat, Msg: format, Args: args})
}

func (r *Recorder) WarnErr(msg string, err error) {
	r.record(Call{Level: LevelWarn, Kind: KindError, Msg: msg, Err: err})
}

func (r *Recorder) Error(msg string) {
	r.record(Call{Level: LevelError, Kind: KindMessage, Msg: msg})
}

func (r *Recorder) Errorf(format string, args ...any) {
	r.record(Call{Level: LevelError, Kind: KindFormat, Msg: format, Args: args})
}

func (r *Recorder) ErrorErr(msg string, err error) {
	r.record(Call{Level: LevelError, Kind: KindError, Msg: msg, Err: err})
}
