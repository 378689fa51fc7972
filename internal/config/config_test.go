package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := ReadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":3001", cfg.Listen)
	assert.Equal(t, "migrations", cfg.MigrationsFolder)
	assert.True(t, cfg.Setup)
	assert.Equal(t, 24*time.Hour, cfg.SessionLifetime)
	assert.Equal(t, int64(5<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestReadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := "listen: \":8080\"\nfs_root: /srv/photos\nsession_lifetime: 2h\ndebug: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	t.Setenv("MAGAZINE_LISTEN", ":9090")

	cfg, err := ReadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Listen, "environment must override the file")
	assert.Equal(t, "/srv/photos", cfg.FsRoot)
	assert.Equal(t, 2*time.Hour, cfg.SessionLifetime)
	assert.True(t, cfg.Debug)
}

func TestReadConfigMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("listen: [unterminated"), 0o600))

	_, err := ReadConfig()
	assert.Error(t, err)
}
