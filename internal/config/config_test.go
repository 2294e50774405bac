package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the yml file", func(t *testing.T) {
		// Given: a config file with every field set
		path := writeConfig(t, "log-level: debug\nplayers:\n  first: Ann\n  second: Ben\n")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, Players{First: "Ann", Second: "Ben"}, conf.Players)
	})

	t.Run("Fills defaults for missing fields", func(t *testing.T) {
		path := writeConfig(t, "log-level: warn\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, Players{First: "Player1", Second: "Player2"}, conf.Players)
	})

	t.Run("Falls back to the environment without a file", func(t *testing.T) {
		// Given: no config file and env overrides
		t.Setenv("LOG_LEVEL", "error")
		t.Setenv("PLAYER_FIRST", "Zed")

		// When: the config is loaded from a missing path
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: env values and defaults are used
		require.NoError(t, err)
		assert.Equal(t, "error", conf.LogLevel)
		assert.Equal(t, "Zed", conf.Players.First)
		assert.Equal(t, "Player2", conf.Players.Second)
	})

	t.Run("Rejects an unknown log level", func(t *testing.T) {
		path := writeConfig(t, "log-level: verbose\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})
}

func TestMustLoad_Panics(t *testing.T) {
	path := writeConfig(t, "log-level: loud\n")

	assert.Panics(t, func() {
		MustLoad(path)
	})
}
