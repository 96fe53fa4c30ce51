package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "keygate.db", cfg.DBPath)
	assert.Equal(t, DriverBolt, cfg.Driver)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("KEYGATE_DB", "/tmp/custom.db")
	t.Setenv("KEYGATE_DRIVER", "sqlite")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, DriverSQLite, cfg.Driver)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "env: prod\ndb_path: /var/lib/keygate/store.db\ndriver: sqlite\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "/var/lib/keygate/store.db", cfg.DBPath)
	assert.Equal(t, DriverSQLite, cfg.Driver)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("KEYGATE_DRIVER", "postgres")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage driver")
}
