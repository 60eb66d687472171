package semanticlogger

import (
	"testing"
	"time"
)

// SetNow replaces the deadline clock for the duration of the test.
func SetNow(t *testing.T, fn func() time.Time) {
	t.Helper()
	prev := now
	now = fn
	t.Cleanup(func() { now = prev })
}

var TypeName = typeName
