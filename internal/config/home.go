package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is the default configuration file name.
	ConfigFileName = "semlog.yaml"

	// EnvPrefix prefixes every environment override, e.g. SEMLOG_LEVEL.
	EnvPrefix = "SEMLOG"

	// HomeEnv overrides the configuration directory.
	HomeEnv = "SEMLOG_HOME"

	// ConfigEnv points at a configuration file directly.
	ConfigEnv = "SEMLOG_CONFIG"

	defaultDirName = "semlog"
)

// Home returns the configuration directory: $SEMLOG_HOME, or semlog under
// the user config directory (~/.config/semlog on Linux).
func Home() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine user config directory: %w", err)
	}
	return filepath.Join(dir, defaultDirName), nil
}

// ResolvePath picks the configuration file.
// Precedence: explicit path > $SEMLOG_CONFIG > Home()/semlog.yaml.
func ResolvePath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if p := os.Getenv(ConfigEnv); p != "" {
		return p, nil
	}
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigFileName), nil
}
