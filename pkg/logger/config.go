package logger

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats for the console writer.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// FileName is the name of the rotated log file inside Config.LogsDir.
const FileName = "semlog.log"

// Config holds backend configuration. Zero values fall back to the defaults
// returned by the getters.
type Config struct {
	Level       string     `mapstructure:"level" yaml:"level"`
	Format      string     `mapstructure:"format" yaml:"format"`
	FileEnabled *bool      `mapstructure:"file_enabled" yaml:"file_enabled,omitempty"`
	LogsDir     string     `mapstructure:"logs_dir" yaml:"logs_dir,omitempty"`
	MaxSizeMB   int        `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxAgeDays  int        `mapstructure:"max_age_days" yaml:"max_age_days"`
	MaxBackups  int        `mapstructure:"max_backups" yaml:"max_backups"`
	Compress    bool       `mapstructure:"compress" yaml:"compress"`
	OTLP        OTLPConfig `mapstructure:"otlp" yaml:"otlp"`
}

// OTLPConfig configures export of log records over OTLP/HTTP.
type OTLPConfig struct {
	Enabled     bool          `mapstructure:"enabled" yaml:"enabled"`
	Endpoint    string        `mapstructure:"endpoint" yaml:"endpoint,omitempty"`
	Insecure    bool          `mapstructure:"insecure" yaml:"insecure"`
	ServiceName string        `mapstructure:"service_name" yaml:"service_name,omitempty"`
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout,omitempty"`
}

// IsFileEnabled returns whether file logging is enabled.
// Defaults to true if not explicitly set; a LogsDir is still required.
func (c *Config) IsFileEnabled() bool {
	if c.FileEnabled == nil {
		return true
	}
	return *c.FileEnabled
}

// GetLevel returns the parsed level, defaulting to info.
func (c *Config) GetLevel() (zerolog.Level, error) {
	return ParseLevel(c.Level)
}

// GetFormat returns the console format, defaulting to console.
func (c *Config) GetFormat() string {
	if c.Format == "" {
		return FormatConsole
	}
	return strings.ToLower(c.Format)
}

// GetMaxSizeMB returns the max size in MB, defaulting to 50 if not set.
func (c *Config) GetMaxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 50
	}
	return c.MaxSizeMB
}

// GetMaxAgeDays returns the max age in days, defaulting to 7 if not set.
func (c *Config) GetMaxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

// GetMaxBackups returns the max backups, defaulting to 3 if not set.
func (c *Config) GetMaxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

// GetServiceName returns the OTel service name, defaulting to "semlog".
func (c *OTLPConfig) GetServiceName() string {
	if c.ServiceName == "" {
		return "semlog"
	}
	return c.ServiceName
}

// GetTimeout returns the export timeout, defaulting to 10s.
func (c *OTLPConfig) GetTimeout() time.Duration {
	if c.Timeout <= 0 {
		return 10 * time.Second
	}
	return c.Timeout
}

// Validate checks the values that have no sensible fallback.
func (c *Config) Validate() error {
	if _, err := c.GetLevel(); err != nil {
		return err
	}
	switch c.GetFormat() {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q (want %s or %s)", c.Format, FormatConsole, FormatJSON)
	}
	return nil
}

// ParseLevel parses a level name. The empty string means info; "warning" is
// accepted as an alias for warn.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}
