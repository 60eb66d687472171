// Package config loads backend configuration from semlog.yaml and SEMLOG_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/mapstructure"
	"github.com/schmitthub/semanticlogger/pkg/logger"
	"github.com/spf13/viper"
)

// Loader reads a logger.Config from one file plus the environment.
type Loader struct {
	path  string
	viper *viper.Viper
	mu    sync.Mutex
}

// NewLoader creates a loader for path. An empty path or a missing file
// yields defaults plus environment overrides.
func NewLoader(path string) *Loader {
	return &Loader{
		path:  path,
		viper: newViper(),
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults registers every key so AutomaticEnv also applies to Unmarshal.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("level", d.Level)
	v.SetDefault("format", d.Format)
	v.SetDefault("file_enabled", d.IsFileEnabled())
	v.SetDefault("logs_dir", d.LogsDir)
	v.SetDefault("max_size_mb", d.GetMaxSizeMB())
	v.SetDefault("max_age_days", d.GetMaxAgeDays())
	v.SetDefault("max_backups", d.GetMaxBackups())
	v.SetDefault("compress", d.Compress)
	v.SetDefault("otlp.enabled", d.OTLP.Enabled)
	v.SetDefault("otlp.endpoint", d.OTLP.Endpoint)
	v.SetDefault("otlp.insecure", d.OTLP.Insecure)
	v.SetDefault("otlp.service_name", d.OTLP.GetServiceName())
	v.SetDefault("otlp.timeout", d.OTLP.GetTimeout().String())
}

// DefaultConfig returns the configuration used when nothing is set:
// console output at info level, no file, no OTLP export.
func DefaultConfig() *logger.Config {
	return &logger.Config{
		Level:  "info",
		Format: logger.FormatConsole,
	}
}

// Path returns the configuration file path.
func (l *Loader) Path() string {
	return l.path
}

// Load reads the file (if present) and returns the merged configuration.
func (l *Loader) Load() (*logger.Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.path != "" {
		_, err := os.Stat(l.path)
		switch {
		case err == nil:
			l.viper.SetConfigFile(l.path)
			l.viper.SetConfigType("yaml")
			if err := l.viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
	}

	return l.decode()
}

func (l *Loader) decode() (*logger.Config, error) {
	return decode(l.viper)
}

// decode unmarshals v into a validated Config. Viper decodes weakly, so
// string values such as "true" or "25" convert to the field types.
func decode(v *viper.Viper) (*logger.Config, error) {
	var cfg logger.Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Watch re-decodes the configuration whenever the loaded file is written and
// passes the result to onChange. Load must have found a file first.
func (l *Loader) Watch(onChange func(*logger.Config, error)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.viper.ConfigFileUsed() == "" {
		return fmt.Errorf("watch config requires a loaded config file")
	}

	if onChange != nil {
		l.viper.OnConfigChange(func(e fsnotify.Event) {
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
				return
			}
			l.mu.Lock()
			cfg, err := l.decode()
			l.mu.Unlock()
			onChange(cfg, err)
		})
	}
	l.viper.WatchConfig()
	return nil
}
