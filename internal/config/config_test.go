package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the yaml file", func(t *testing.T) {
		// Given: a config file with every field set
		path := writeConfig(t, "log-level: debug\nself-play:\n  matches: 3\n  opening: [4, 0]\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the values are read as written
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 3, conf.SelfPlay.Matches)
		assert.Equal(t, []entity.Move{{Row: 1, Col: 1}, {Row: 0, Col: 0}}, conf.SelfPlay.OpeningMoves())
	})

	t.Run("Falls back to defaults and env without a file", func(t *testing.T) {
		// Given: no config file and a match count in the environment
		t.Setenv("SELF_PLAY_MATCHES", "5")

		// When: loading a missing path
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults and env are applied
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 5, conf.SelfPlay.Matches)
		assert.Empty(t, conf.SelfPlay.OpeningMoves())
	})

	t.Run("Rejects an unknown log level", func(t *testing.T) {
		path := writeConfig(t, "log-level: verbose\n")

		_, err := Load(path)

		var validationErrs validator.ValidationErrors
		require.Error(t, err)
		assert.True(t, errors.As(err, &validationErrs))
	})

	t.Run("Rejects opening cells off the board", func(t *testing.T) {
		path := writeConfig(t, "self-play:\n  opening: [9]\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})

	t.Run("MustLoad panics on an invalid file", func(t *testing.T) {
		path := writeConfig(t, "self-play:\n  matches: -1\n")

		assert.Panics(t, func() {
			MustLoad(path)
		})
	})
}
