package pipe

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/schmitthub/semanticlogger/internal/cmdutil"
	"github.com/schmitthub/semanticlogger/internal/config"
	"github.com/schmitthub/semanticlogger/internal/iostreams/iostreamstest"
	"github.com/schmitthub/semanticlogger/pkg/logger"
	"github.com/schmitthub/semanticlogger/pkg/semanticlogger"
	"github.com/schmitthub/semanticlogger/pkg/semanticlogger/semanticloggertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for the concurrent writes a config
// watcher produces.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// notifyingDelegate forwards to the wrapped delegate and reports every
// info-level message after it was handed on.
type notifyingDelegate struct {
	semanticlogger.Delegate
	emitted chan<- string
}

func (d notifyingDelegate) Info(msg string) {
	d.Delegate.Info(msg)
	d.emitted <- msg
}

func TestNewCmdPipe_Options(t *testing.T) {
	tio := iostreamstest.New()
	f := &cmdutil.Factory{IOStreams: tio.IOStreams}

	var gotOpts *PipeOptions
	cmd := NewCmdPipe(f, func(_ context.Context, opts *PipeOptions) error {
		gotOpts = opts
		return nil
	})

	cmd.SetArgs([]string{"--name", "build", "-s", "warn", "--watch", "--max-length", "80"})
	require.NoError(t, cmd.Execute())
	require.NotNil(t, gotOpts)
	assert.Equal(t, "build", gotOpts.Name)
	assert.Equal(t, "warn", gotOpts.Severity)
	assert.True(t, gotOpts.Watch)
	assert.True(t, gotOpts.StripANSI, "escape sequences are stripped by default")
	assert.Equal(t, 80, gotOpts.MaxLength)
}

func TestPipeRun_LogsEachLine(t *testing.T) {
	rec := semanticloggertest.New()
	semanticlogger.SetBackend(semanticlogger.BackendFunc(func(string) semanticlogger.Delegate { return rec }))
	t.Cleanup(func() { semanticlogger.SetBackend(nil) })

	tio := iostreamstest.New()
	tio.InBuf.WriteString("first\r\n\n   \nsecond with %d verbs\n")

	err := pipeRun(context.Background(), &PipeOptions{
		IOStreams: tio.IOStreams,
		Name:      "build",
		Severity:  "to-investigate-tomorrow",
	})
	require.NoError(t, err)

	calls := rec.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "first", calls[0].Msg)
	assert.Equal(t, "second with %d verbs", calls[1].Msg, "lines are never treated as format strings")
	for _, c := range calls {
		assert.Equal(t, semanticloggertest.LevelWarn, c.Level)
		assert.Equal(t, semanticloggertest.KindMessage, c.Kind)
	}
}

func TestPipeRun_InvalidSeverity(t *testing.T) {
	tio := iostreamstest.New()
	err := pipeRun(context.Background(), &PipeOptions{IOStreams: tio.IOStreams, Severity: "fatal"})

	var flagErr *cmdutil.FlagError
	require.ErrorAs(t, err, &flagErr)
}

func TestPipeRun_CanceledContext(t *testing.T) {
	tio := iostreamstest.New()
	tio.InBuf.WriteString("line\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pipeRun(ctx, &PipeOptions{IOStreams: tio.IOStreams, Severity: "info"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPipeRun_WatchWithoutConfigFile(t *testing.T) {
	out := &syncBuffer{}
	backend := logger.NewFromLogger(zerolog.New(out))
	semanticlogger.UseZerolog(backend)
	t.Cleanup(func() { semanticlogger.SetBackend(nil) })

	loader := config.NewLoader(filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := loader.Load()
	require.NoError(t, err)

	tio := iostreamstest.New()
	tio.InBuf.WriteString("still logged\n")

	err = pipeRun(context.Background(), &PipeOptions{
		IOStreams:    tio.IOStreams,
		Backend:      func() *logger.Backend { return backend },
		ConfigLoader: func() (*config.Loader, error) { return loader, nil },
		Severity:     "info",
		Watch:        true,
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "config watch unavailable")
	assert.Contains(t, out.String(), "still logged")
}

func TestPipeRun_WatchReloadsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("level: warn\n"), 0644))

	loader := config.NewLoader(path)
	_, err := loader.Load()
	require.NoError(t, err)

	out := &syncBuffer{}
	backend := logger.NewFromLogger(zerolog.New(out).Level(zerolog.WarnLevel))
	emitted := make(chan string, 4)
	semanticlogger.SetBackend(semanticlogger.BackendFunc(func(name string) semanticlogger.Delegate {
		return notifyingDelegate{Delegate: backend.Named(name), emitted: emitted}
	}))
	t.Cleanup(func() { semanticlogger.SetBackend(nil) })

	waitEmitted := func(want string) {
		t.Helper()
		select {
		case got := <-emitted:
			require.Equal(t, want, got)
		case <-time.After(5 * time.Second):
			t.Fatalf("%q was never emitted", want)
		}
	}

	in, feed := io.Pipe()
	tio := iostreamstest.New()
	tio.IOStreams.In = in

	done := make(chan error, 1)
	go func() {
		done <- pipeRun(context.Background(), &PipeOptions{
			IOStreams:    tio.IOStreams,
			Backend:      func() *logger.Backend { return backend },
			ConfigLoader: func() (*config.Loader, error) { return loader, nil },
			Name:         "tail",
			Severity:     "info",
			Watch:        true,
		})
	}()

	_, err = io.WriteString(feed, "filtered before reload\n")
	require.NoError(t, err)
	// The write returns once the line is read; the edit must wait until it
	// went through the warn-level backend.
	waitEmitted("filtered before reload")

	require.NoError(t, os.WriteFile(path, []byte("level: info\n"), 0644))
	require.Eventually(t, func() bool {
		return backend.Level() == zerolog.InfoLevel
	}, 5*time.Second, 20*time.Millisecond)

	_, err = io.WriteString(feed, "shown after reload\n")
	require.NoError(t, err)
	waitEmitted("shown after reload")
	require.NoError(t, feed.Close())
	require.NoError(t, <-done)

	logged := out.String()
	assert.False(t, strings.Contains(logged, "filtered before reload"))
	assert.Contains(t, logged, "shown after reload")
}

func TestPipeRun_CancelWhileBlockedOnInput(t *testing.T) {
	in, feed := io.Pipe()
	t.Cleanup(func() { _ = feed.Close() })

	tio := iostreamstest.New()
	tio.IOStreams.In = in

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- pipeRun(ctx, &PipeOptions{IOStreams: tio.IOStreams, Severity: "info"})
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("pipe should stop when its context is canceled")
	}
}

func TestPipeRun_StripsAndTruncates(t *testing.T) {
	rec := semanticloggertest.New()
	semanticlogger.SetBackend(semanticlogger.BackendFunc(func(string) semanticlogger.Delegate { return rec }))
	t.Cleanup(func() { semanticlogger.SetBackend(nil) })

	tio := iostreamstest.New()
	tio.InBuf.WriteString("\x1b[32mPASS\x1b[0m ok\n\x1b[2K\x1b[0m\na very long line of output\n")

	err := pipeRun(context.Background(), &PipeOptions{
		IOStreams: tio.IOStreams,
		Severity:  "info",
		StripANSI: true,
		MaxLength: 10,
	})
	require.NoError(t, err)

	calls := rec.Calls()
	require.Len(t, calls, 2, "a line of only escape codes is blank")
	assert.Equal(t, "PASS ok", calls[0].Msg)
	assert.Equal(t, "a very ...", calls[1].Msg)
}

func TestClean(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		opts   PipeOptions
		want   string
		wantOK bool
	}{
		{name: "plain", line: "hello", want: "hello", wantOK: true},
		{name: "trailing CR", line: "hello\r", want: "hello", wantOK: true},
		{name: "blank", line: "   ", wantOK: false},
		{name: "keeps escapes when not stripping", line: "\x1b[1mx\x1b[0m", want: "\x1b[1mx\x1b[0m", wantOK: true},
		{name: "strips escapes", line: "\x1b[1mx\x1b[0m", opts: PipeOptions{StripANSI: true}, want: "x", wantOK: true},
		{name: "strips control", line: "a\x07b", opts: PipeOptions{StripANSI: true}, want: "ab", wantOK: true},
		{name: "escape-only line is blank", line: "\x1b[K", opts: PipeOptions{StripANSI: true}, wantOK: false},
		{name: "truncates", line: "abcdefghij", opts: PipeOptions{MaxLength: 6}, want: "abc...", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := clean(tt.line, &tt.opts)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
