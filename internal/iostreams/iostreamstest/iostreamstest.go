// Package iostreamstest provides test doubles for the iostreams package.
package iostreamstest

import (
	"bytes"

	"github.com/schmitthub/semanticlogger/internal/iostreams"
)

// TestIOStreams wraps IOStreams with accessible buffers.
type TestIOStreams struct {
	*iostreams.IOStreams
	InBuf  *bytes.Buffer
	OutBuf *bytes.Buffer
	ErrBuf *bytes.Buffer
}

// New creates IOStreams for testing: non-interactive, colors disabled.
func New() *TestIOStreams {
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	return &TestIOStreams{
		IOStreams: &iostreams.IOStreams{
			In:     in,
			Out:    out,
			ErrOut: errOut,
		},
		InBuf:  in,
		OutBuf: out,
		ErrBuf: errOut,
	}
}
