// Package logger is the zerolog backend behind semanticlogger. It resolves
// named delegates, writes to the console and an optional rotated JSON file,
// and can export records over OTLP.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NameKey is the field carrying the logger name on every record.
const NameKey = "logger"

// Backend owns the root zerolog.Logger and the writers behind it.
// All methods are safe for concurrent use.
type Backend struct {
	root atomic.Pointer[zerolog.Logger]

	// loggers memoizes Named delegates by name.
	loggers sync.Map // map[string]*Named

	// fileWriter is the rotated file output, nil when file logging is off.
	fileWriter *lumberjack.Logger

	// provider is the OTel logger provider, nil when OTLP export is off.
	provider *sdklog.LoggerProvider

	closeOnce sync.Once
}

var (
	defaultBackend     *Backend
	defaultBackendOnce sync.Once
)

// Default returns the process-wide console backend: stderr, info level.
func Default() *Backend {
	defaultBackendOnce.Do(func() {
		defaultBackend = NewFromLogger(zerolog.New(consoleWriter(os.Stderr, FormatConsole)).
			Level(zerolog.InfoLevel).
			With().
			Timestamp().
			Logger())
	})
	return defaultBackend
}

// NewFromLogger wraps an existing zerolog.Logger.
func NewFromLogger(l zerolog.Logger) *Backend {
	b := &Backend{}
	b.root.Store(&l)
	return b
}

// New builds a backend from cfg. console may be nil to disable console
// output. File logging is used when cfg enables it and LogsDir is set.
// A nil cfg behaves like an empty Config.
func New(cfg *Config, console io.Writer) (*Backend, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := cfg.GetLevel()
	if err != nil {
		return nil, err
	}

	b := &Backend{}
	var writers []io.Writer
	if console != nil {
		writers = append(writers, consoleWriter(console, cfg.GetFormat()))
	}

	if cfg.LogsDir != "" && cfg.IsFileEnabled() {
		if err := os.MkdirAll(cfg.LogsDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create logs directory: %w", err)
		}
		b.fileWriter = &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogsDir, FileName),
			MaxSize:    cfg.GetMaxSizeMB(),  // MB
			MaxAge:     cfg.GetMaxAgeDays(), // days
			MaxBackups: cfg.GetMaxBackups(),
			LocalTime:  true,
			Compress:   cfg.Compress,
		}
		// Console uses human-readable format, file uses JSON.
		writers = append(writers, b.fileWriter)
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		out = io.Discard
	case 1:
		out = writers[0]
	default:
		out = zerolog.MultiLevelWriter(writers...)
	}

	root := zerolog.New(out).Level(level).With().Timestamp().Logger()

	if cfg.OTLP.Enabled {
		hook, provider, err := newOTLPHook(context.Background(), cfg.OTLP)
		if err != nil {
			_ = b.closeFile()
			return nil, err
		}
		b.provider = provider
		root = root.Hook(hook)
	}

	b.root.Store(&root)
	return b, nil
}

// Named returns the delegate for name, creating it on first use.
func (b *Backend) Named(name string) *Named {
	if n, ok := b.loggers.Load(name); ok {
		return n.(*Named)
	}
	n, _ := b.loggers.LoadOrStore(name, &Named{name: name, backend: b})
	return n.(*Named)
}

// Level returns the current minimum level.
func (b *Backend) Level() zerolog.Level {
	return b.root.Load().GetLevel()
}

// SetLevel changes the minimum level for every delegate of this backend,
// including ones handed out earlier.
func (b *Backend) SetLevel(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	for {
		cur := b.root.Load()
		next := cur.Level(lvl)
		if b.root.CompareAndSwap(cur, &next) {
			return nil
		}
	}
}

// LogFilePath returns the path of the current log file, or "" when file
// logging is disabled.
func (b *Backend) LogFilePath() string {
	if b.fileWriter != nil {
		return b.fileWriter.Filename
	}
	return ""
}

// Close flushes and shuts down the OTLP exporter and closes the log file.
// Further logging after Close still works but the file is reopened by
// lumberjack on the next write. Safe to call more than once.
func (b *Backend) Close(ctx context.Context) error {
	var errs []error
	b.closeOnce.Do(func() {
		if b.provider != nil {
			if err := b.provider.Shutdown(ctx); err != nil {
				errs = append(errs, fmt.Errorf("shutting down otlp export: %w", err))
			}
		}
		if err := b.closeFile(); err != nil {
			errs = append(errs, fmt.Errorf("closing log file: %w", err))
		}
	})
	return errors.Join(errs...)
}

func (b *Backend) closeFile() error {
	if b.fileWriter == nil {
		return nil
	}
	return b.fileWriter.Close()
}

func (b *Backend) logger() *zerolog.Logger {
	return b.root.Load()
}

// consoleWriter wraps w in a zerolog.ConsoleWriter unless JSON is wanted.
// Colour is only used when w is a terminal.
func consoleWriter(w io.Writer, format string) io.Writer {
	if format == FormatJSON {
		return w
	}
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal(w),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
