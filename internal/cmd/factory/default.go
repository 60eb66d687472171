package factory

import (
	"context"
	"sync"

	"github.com/schmitthub/semanticlogger/internal/cmdutil"
	"github.com/schmitthub/semanticlogger/internal/config"
	"github.com/schmitthub/semanticlogger/internal/iostreams"
	"github.com/schmitthub/semanticlogger/pkg/logger"
)

// loggerName names the CLI's own diagnostics.
const loggerName = "semlog"

// New creates a fully-wired Factory with lazy-initialized dependency closures.
// Called exactly once at the CLI entry point (internal/semlog/main.go).
// Tests should NOT import this package; construct &cmdutil.Factory{} directly.
func New(version, buildDate string) *cmdutil.Factory {
	f := &cmdutil.Factory{
		Version:   version,
		BuildDate: buildDate,
		IOStreams: iostreams.NewIOStreams(),
	}

	var (
		loaderOnce sync.Once
		loader     *config.Loader
		loaderErr  error
	)
	f.ConfigLoader = func() (*config.Loader, error) {
		loaderOnce.Do(func() {
			path, err := config.ResolvePath(f.ConfigPath)
			if err != nil {
				loaderErr = err
				return
			}
			loader = config.NewLoader(path)
		})
		return loader, loaderErr
	}

	var (
		cfgOnce sync.Once
		cfg     *logger.Config
		cfgErr  error
	)
	f.Config = func() (*logger.Config, error) {
		cfgOnce.Do(func() {
			l, err := f.ConfigLoader()
			if err != nil {
				cfgErr = err
				return
			}
			cfg, cfgErr = l.Load()
		})
		return cfg, cfgErr
	}

	var (
		backendOnce sync.Once
		backend     *logger.Backend
	)
	f.Backend = func() *logger.Backend {
		backendOnce.Do(func() {
			backend = newBackend(f)
		})
		return backend
	}
	f.CloseBackend = func(ctx context.Context) error {
		if backend == nil {
			return nil
		}
		return backend.Close(ctx)
	}

	return f
}

// newBackend builds the backend from the loaded configuration plus the
// persistent flags. Falls back to console-only logging on any error.
func newBackend(f *cmdutil.Factory) *logger.Backend {
	loaded, err := f.Config()
	if err != nil {
		b := consoleBackend(f)
		b.Named(loggerName).WarnErr("file logging unavailable: failed to load config", err)
		return b
	}

	cfg := *loaded
	applyFlags(f, &cfg)

	b, err := logger.New(&cfg, f.IOStreams.ErrOut)
	if err != nil {
		b = consoleBackend(f)
		b.Named(loggerName).WarnErr("file logging unavailable: failed to initialize backend", err)
	}
	return b
}

func consoleBackend(f *cmdutil.Factory) *logger.Backend {
	cfg := &logger.Config{}
	applyFlags(f, cfg)
	b, err := logger.New(cfg, f.IOStreams.ErrOut)
	if err != nil {
		// Only reachable with an unvalidated --format.
		return logger.Default()
	}
	return b
}

func applyFlags(f *cmdutil.Factory, cfg *logger.Config) {
	if f.Debug {
		cfg.Level = "debug"
	}
	if f.Format != "" {
		cfg.Format = f.Format
	}
}
