package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkg.jsn.cam/levelup/pkg/storage"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, storage.KindBbolt, cfg.StoreBackend)
	assert.Equal(t, "var/levelup.db", cfg.StorePath)
	assert.Equal(t, storage.DefaultBucket, cfg.StoreBucket)
	assert.Equal(t, int32(42), cfg.Seed)
	assert.False(t, cfg.AssumeYes)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("LEVELUP_STORE_BACKEND", "sqlite")
	t.Setenv("LEVELUP_SEED", "-7")
	t.Setenv("LEVELUP_ASSUME_YES", "true")
	t.Setenv("LEVELUP_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, storage.KindSQLite, cfg.StoreBackend)
	assert.Equal(t, int32(-7), cfg.Seed)
	assert.True(t, cfg.AssumeYes)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LEVELUP_STORE_PATH=from-file.db\nLEVELUP_SEED=5\n"), 0o600))
	t.Setenv("LEVELUP_SEED", "9")
	// godotenv sets variables process-wide; clear the one it will add.
	t.Setenv("LEVELUP_STORE_PATH", "")
	require.NoError(t, os.Unsetenv("LEVELUP_STORE_PATH"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file.db", cfg.StorePath)
	assert.Equal(t, int32(9), cfg.Seed)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("LEVELUP_STORE_BACKEND", "redis")
	_, err := Load()
	assert.ErrorIs(t, err, storage.ErrUnknownBackend)

	t.Setenv("LEVELUP_STORE_BACKEND", "memory")
	t.Setenv("LEVELUP_LOG_LEVEL", "loud")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("LEVELUP_LOG_LEVEL", "info")
	t.Setenv("LEVELUP_SEED", "not-a-number")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := Logger(&buf, zerolog.InfoLevel).With().Str("component", "cli").Logger()
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "component=cli")
}
