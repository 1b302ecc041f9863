package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
  mode: release
database:
  dsn: "host=localhost dbname=test"
auth:
  username: admin
  password: secret
  jwt_secret: abc
  token_expiration: 2h
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "host=localhost dbname=test", cfg.Database.DSN)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenExpiration)
	assert.Equal(t, "millbooks", cfg.Auth.Issuer)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
database:
  dsn: "host=localhost dbname=test"
auth:
  jwt_secret: abc
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	assert.Equal(t, 100, cfg.Database.MaxOpenConns)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenExpiration)
}

func TestLoadMissingDSN(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt_secret: abc
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.dsn")
}

func TestLoadMissingSecret(t *testing.T) {
	path := writeConfig(t, `
database:
  dsn: "host=localhost dbname=test"
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.jwt_secret")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
