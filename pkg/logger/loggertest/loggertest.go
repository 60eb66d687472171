// Package loggertest provides test doubles for the logger package.
// TestLogger captures backend output for assertions in tests.
package loggertest

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"
	"github.com/schmitthub/semanticlogger/pkg/logger"
)

// TestLogger is a *logger.Backend writing JSON lines into a buffer.
// It is not safe for concurrent writes.
type TestLogger struct {
	backend *logger.Backend
	buf     *bytes.Buffer
}

// New creates a test logger that captures all output, down to trace level.
func New() *TestLogger {
	buf := &bytes.Buffer{}
	return &TestLogger{
		backend: logger.NewFromLogger(zerolog.New(buf).Level(zerolog.TraceLevel)),
		buf:     buf,
	}
}

// NewNop creates a test logger that discards all output.
func NewNop() *TestLogger {
	return &TestLogger{
		backend: logger.NewFromLogger(zerolog.Nop()),
		buf:     &bytes.Buffer{},
	}
}

// Backend returns the backend under test.
func (tl *TestLogger) Backend() *logger.Backend { return tl.backend }

// Named returns the backend's delegate for name.
func (tl *TestLogger) Named(name string) *logger.Named { return tl.backend.Named(name) }

// Output returns captured log output as a string.
func (tl *TestLogger) Output() string { return tl.buf.String() }

// Reset clears captured output.
func (tl *TestLogger) Reset() { tl.buf.Reset() }

// Entries decodes the captured JSON lines. Lines that are not JSON objects
// are skipped.
func (tl *TestLogger) Entries() []map[string]any {
	var out []map[string]any
	sc := bufio.NewScanner(strings.NewReader(tl.buf.String()))
	for sc.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(sc.Bytes(), &entry); err != nil {
			continue
		}
		out = append(out, entry)
	}
	return out
}
