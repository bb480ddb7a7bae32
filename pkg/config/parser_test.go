package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 300, cfg.Cache.DefaultTTLSeconds)
	assert.Equal(t, 1000, cfg.Cache.MaxSize)
	assert.Equal(t, 10*time.Minute, cfg.Cache.CleanupInterval())
	assert.True(t, cfg.Logging.Enabled)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[cache]
defaultTTLSeconds = 30
maxSize = 5
cleanupIntervalMs = 1000

[logging]
enabled = false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Cache.DefaultTTLSeconds)
	assert.Equal(t, 5, cfg.Cache.MaxSize)
	assert.Equal(t, time.Second, cfg.Cache.CleanupInterval())
	assert.False(t, cfg.Logging.Enabled)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[cache]\nmaxSize = 7\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Cache.MaxSize)
	assert.Equal(t, 300, cfg.Cache.DefaultTTLSeconds)
	assert.True(t, cfg.Logging.Enabled)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
