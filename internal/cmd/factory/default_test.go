package factory

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/schmitthub/semanticlogger/internal/config"
	"github.com/schmitthub/semanticlogger/internal/iostreams/iostreamstest"
)

func TestNew(t *testing.T) {
	f := New("1.0.0", "2026-10-15")

	if f.Version != "1.0.0" {
		t.Errorf("expected version '1.0.0', got '%s'", f.Version)
	}
	if f.BuildDate != "2026-10-15" {
		t.Errorf("expected build date '2026-10-15', got '%s'", f.BuildDate)
	}
	if f.IOStreams == nil {
		t.Error("expected IOStreams to be non-nil")
	}
}

func TestFactory_ConfigLoader_ResolvesPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.HomeEnv, home)
	t.Setenv(config.ConfigEnv, "")

	f := New("1.0.0", "")
	l, err := f.ConfigLoader()
	if err != nil {
		t.Fatalf("ConfigLoader() returned error: %v", err)
	}
	if want := filepath.Join(home, config.ConfigFileName); l.Path() != want {
		t.Errorf("expected path %q, got %q", want, l.Path())
	}

	explicit := New("1.0.0", "")
	explicit.ConfigPath = "/elsewhere/semlog.yaml"
	l, err = explicit.ConfigLoader()
	if err != nil {
		t.Fatalf("ConfigLoader() returned error: %v", err)
	}
	if l.Path() != "/elsewhere/semlog.yaml" {
		t.Errorf("expected explicit path, got %q", l.Path())
	}
}

func TestFactory_Backend_UsesConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.HomeEnv, home)
	t.Setenv(config.ConfigEnv, "")
	if err := os.WriteFile(filepath.Join(home, config.ConfigFileName), []byte("level: warn\nformat: json\n"), 0644); err != nil {
		t.Fatal(err)
	}

	f := New("1.0.0", "")
	tio := iostreamstest.New()
	f.IOStreams = tio.IOStreams

	b := f.Backend()
	if b != f.Backend() {
		t.Error("expected Backend() to be memoized")
	}
	if b.Level() != zerolog.WarnLevel {
		t.Errorf("expected warn level, got %s", b.Level())
	}

	b.Named("svc").Warn("json please")
	if !strings.Contains(tio.ErrBuf.String(), `"message":"json please"`) {
		t.Errorf("expected JSON output on stderr, got %q", tio.ErrBuf.String())
	}

	if err := f.CloseBackend(context.Background()); err != nil {
		t.Errorf("CloseBackend() returned error: %v", err)
	}
}

func TestFactory_Backend_FlagsOverrideConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.HomeEnv, home)
	t.Setenv(config.ConfigEnv, "")
	if err := os.WriteFile(filepath.Join(home, config.ConfigFileName), []byte("level: error\n"), 0644); err != nil {
		t.Fatal(err)
	}

	f := New("1.0.0", "")
	f.IOStreams = iostreamstest.New().IOStreams
	f.Debug = true
	f.Format = "json"

	if got := f.Backend().Level(); got != zerolog.DebugLevel {
		t.Errorf("expected --debug to win, got %s", got)
	}

	cfg, err := f.Config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Level != "error" {
		t.Errorf("flags must not mutate the cached config, got level %q", cfg.Level)
	}
}

func TestFactory_Backend_FallsBackOnBadConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.HomeEnv, home)
	t.Setenv(config.ConfigEnv, "")
	if err := os.WriteFile(filepath.Join(home, config.ConfigFileName), []byte("level: chatty\n"), 0644); err != nil {
		t.Fatal(err)
	}

	f := New("1.0.0", "")
	tio := iostreamstest.New()
	f.IOStreams = tio.IOStreams
	f.Format = "json"

	b := f.Backend()
	if b == nil {
		t.Fatal("expected a console fallback backend")
	}
	if !strings.Contains(tio.ErrBuf.String(), "failed to load config") {
		t.Errorf("expected fallback warning, got %q", tio.ErrBuf.String())
	}
}

func TestFactory_CloseBackend_BeforeUse(t *testing.T) {
	f := New("1.0.0", "")
	f.IOStreams.ErrOut = &bytes.Buffer{}
	if err := f.CloseBackend(context.Background()); err != nil {
		t.Errorf("expected nil error before Backend() was called, got %v", err)
	}
}
