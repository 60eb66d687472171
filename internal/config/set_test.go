package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	keys := Keys()
	assert.Contains(t, keys, "level")
	assert.Contains(t, keys, "otlp.endpoint")
	assert.IsIncreasing(t, keys)
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "SEMLOG_LEVEL", EnvVar("level"))
	assert.Equal(t, "SEMLOG_OTLP_SERVICE_NAME", EnvVar("otlp.service_name"))
}

func TestSetValue_CreatesAndUpdatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "home", ConfigFileName)

	cfg, err := SetValue(path, "level", "debug")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Level)

	_, err = SetValue(path, "OTLP.Timeout", "3s")
	require.NoError(t, err)
	_, err = SetValue(path, "file_enabled", "false")
	require.NoError(t, err)
	_, err = SetValue(path, "max_backups", "9")
	require.NoError(t, err)

	got, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", got.Level, "earlier keys survive later sets")
	assert.Equal(t, 3*time.Second, got.OTLP.Timeout)
	assert.False(t, got.IsFileEnabled())
	assert.Equal(t, 9, got.MaxBackups)
}

func TestSetValue_IgnoresEnvironment(t *testing.T) {
	t.Setenv("SEMLOG_FORMAT", "json")
	path := filepath.Join(t.TempDir(), ConfigFileName)

	_, err := SetValue(path, "level", "warn")
	require.NoError(t, err)

	t.Setenv("SEMLOG_FORMAT", "")
	got, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "console", got.Format)
}

func TestSetValue_Rejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	writeFile(t, path, "level: error\n")

	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "unknown key", key: "verbosity", value: "1", wantErr: `unknown config key "verbosity"`},
		{name: "invalid level", key: "level", value: "chatty", wantErr: "invalid log level"},
		{name: "not a number", key: "max_size_mb", value: "big", wantErr: "failed to parse config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SetValue(path, tt.key, tt.value)
			assert.ErrorContains(t, err, tt.wantErr)

			got, err := NewLoader(path).Load()
			require.NoError(t, err)
			assert.Equal(t, "error", got.Level, "a rejected value leaves the file untouched")
		})
	}
}
