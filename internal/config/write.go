package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/schmitthub/semanticlogger/pkg/logger"
	"gopkg.in/yaml.v3"
)

// DefaultConfigYAML is written by "semlog config init".
const DefaultConfigYAML = `# semlog configuration
# Every key can be overridden with a SEMLOG_* environment variable,
# e.g. SEMLOG_LEVEL=debug or SEMLOG_OTLP_ENDPOINT=collector:4318.

# debug | info | warn | error
level: info

# console | json
format: console

# Rotated JSON log file. Disabled while logs_dir is empty.
file_enabled: true
# logs_dir: /var/log/semlog
max_size_mb: 50
max_age_days: 7
max_backups: 3
compress: false

otlp:
  enabled: false
  # endpoint: localhost:4318
  insecure: false
  service_name: semlog
  timeout: 10s
`

const lockTimeout = 10 * time.Second

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg *logger.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return withFileLock(path, func() error {
		return atomicWriteFile(path, data, 0o644)
	})
}

// WriteDefault writes DefaultConfigYAML to path. An existing file is kept
// unless force is set. Reports whether the file was written.
func WriteDefault(path string, force bool) (bool, error) {
	written := false
	err := withFileLock(path, func() error {
		if !force {
			if _, err := os.Stat(path); err == nil {
				return nil
			}
		}
		if err := atomicWriteFile(path, []byte(DefaultConfigYAML), 0o644); err != nil {
			return err
		}
		written = true
		return nil
	})
	return written, err
}

// atomicWriteFile writes through a temp file in the target directory and
// renames it into place, so a watcher never sees a half-written file.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".semlog-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file for %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	success = true
	return nil
}

// withFileLock runs fn while holding an advisory lock on path+".lock".
func withFileLock(path string, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	fl := flock.New(path + ".lock")

	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := fl.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("timed out locking %s", path)
	}
	defer func() { _ = fl.Unlock() }()

	return fn()
}
