package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 240, cfg.Session.TTLMinutes)
	assert.Equal(t, "@every 10m", cfg.Session.SweepSchedule)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
debug: true
server:
  host: 127.0.0.1
  port: 8080
session:
  ttl_minutes: 60
  sweep_schedule: "@every 5m"
render:
  chrome_path: /usr/bin/chromium
  qr_base_url: https://qr.internal/gen
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, 60, cfg.Session.TTLMinutes)
	assert.Equal(t, "@every 5m", cfg.Session.SweepSchedule)
	assert.Equal(t, "/usr/bin/chromium", cfg.Render.ChromePath)
	assert.Equal(t, "https://qr.internal/gen", cfg.Render.QRBaseURL)
}

func TestLoadPartialFileGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 240, cfg.Session.TTLMinutes)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not: a: mapping"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("CHROME_PATH", "/opt/chrome")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "/opt/chrome", cfg.Render.ChromePath)
}

func TestEnvPortIgnoredWhenNotNumeric(t *testing.T) {
	t.Setenv("PORT", "eighty")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
}
