package semanticlogger_test

import (
	"testing"
	"time"

	"github.com/schmitthub/semanticlogger/pkg/semanticlogger"
	"github.com/schmitthub/semanticlogger/pkg/semanticlogger/semanticloggertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isoDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

func TestRemind_LogsAfterDeadline(t *testing.T) {
	rec := semanticloggertest.New()
	l := semanticlogger.FromDelegate(rec)

	yesterday := isoDate(time.Now().AddDate(0, 0, -1))
	require.NoError(t, l.RemindToRemoveUnusedImplementationAfter(yesterday, "Expected Logmessage"))

	calls := rec.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, semanticloggertest.Call{
		Level: semanticloggertest.LevelError,
		Kind:  semanticloggertest.KindMessage,
		Msg:   "Expected Logmessage",
	}, calls[0])
}

func TestRemind_IgnoresBeforeDeadline(t *testing.T) {
	rec := semanticloggertest.New()
	l := semanticlogger.FromDelegate(rec)

	tomorrow := isoDate(time.Now().AddDate(0, 0, 1))
	require.NoError(t, l.RemindToRemoveUnusedImplementationAfter(tomorrow, "Unexpected Logmessage"))

	assert.Empty(t, rec.Calls())
}

func TestRemind_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		deadline string
		wantLog  bool
	}{
		{
			name:     "deadline day morning",
			now:      time.Date(2026, 10, 15, 0, 0, 0, 0, time.Local),
			deadline: "2026-10-15",
		},
		{
			name:     "deadline day last second",
			now:      time.Date(2026, 10, 15, 23, 59, 59, 999, time.Local),
			deadline: "2026-10-15",
		},
		{
			name:     "first moment after deadline day",
			now:      time.Date(2026, 10, 16, 0, 0, 0, 0, time.Local),
			deadline: "2026-10-15",
			wantLog:  true,
		},
		{
			name:     "long overdue",
			now:      time.Date(2026, 10, 15, 12, 0, 0, 0, time.Local),
			deadline: "2018-10-23",
			wantLog:  true,
		},
		{
			name:     "day before deadline",
			now:      time.Date(2026, 10, 14, 12, 0, 0, 0, time.Local),
			deadline: "2026-10-15",
		},
		{
			name:     "leap day overdue",
			now:      time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local),
			deadline: "2024-02-29",
			wantLog:  true,
		},
		{
			name:     "year rollover",
			now:      time.Date(2027, 1, 1, 0, 0, 1, 0, time.Local),
			deadline: "2026-12-31",
			wantLog:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			semanticlogger.SetNow(t, func() time.Time { return tt.now })
			rec := semanticloggertest.New()
			l := semanticlogger.FromDelegate(rec)

			err := l.RemindToRemoveUnusedImplementationAfter(tt.deadline, "remove the v1 fallback")
			require.NoError(t, err)

			if tt.wantLog {
				require.Len(t, rec.CallsAt(semanticloggertest.LevelError), 1)
				assert.Equal(t, "remove the v1 fallback", rec.Calls()[0].Msg)
			} else {
				assert.Empty(t, rec.Calls())
			}
		})
	}
}

func TestRemind_ReadsClockOnEveryCall(t *testing.T) {
	current := time.Date(2026, 10, 15, 9, 0, 0, 0, time.Local)
	semanticlogger.SetNow(t, func() time.Time { return current })

	rec := semanticloggertest.New()
	l := semanticlogger.FromDelegate(rec)

	require.NoError(t, l.RemindToRemoveUnusedImplementationAfter("2026-10-15", "msg"))
	assert.Empty(t, rec.Calls())

	current = current.AddDate(0, 0, 1)
	require.NoError(t, l.RemindToRemoveUnusedImplementationAfter("2026-10-15", "msg"))
	assert.Len(t, rec.Calls(), 1)
}

func TestRemind_InvalidDeadline(t *testing.T) {
	semanticlogger.SetNow(t, func() time.Time { return time.Date(2026, 10, 15, 12, 0, 0, 0, time.Local) })

	for _, deadline := range []string{
		"not-a-date",
		"",
		"2026-1-5",
		"2026-02-30",
		"2026-13-01",
		"15.10.2026",
		"2026-10-15T00:00:00",
		" 2026-10-15",
	} {
		t.Run(deadline, func(t *testing.T) {
			rec := semanticloggertest.New()
			l := semanticlogger.FromDelegate(rec)

			err := l.RemindToRemoveUnusedImplementationAfter(deadline, "never logged")
			require.Error(t, err)
			assert.ErrorIs(t, err, semanticlogger.ErrInvalidDeadline)
			assert.Contains(t, err.Error(), "invalid deadline date")
			assert.Empty(t, rec.Calls())
		})
	}
}
