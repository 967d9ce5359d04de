package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[server]
http_port = 9090

[database]
host = "localhost"
port = 5432
user = "rental"
password = "from-file"
dbname = "rental"

[logs]
level = "debug"

[redis]
enabled = true
addr = "localhost:6379"
ttl = 60

[search]
locale = "fr"
`

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sample))

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, time.Minute, cfg.Redis.CacheTTL())
	assert.Equal(t, "fr", cfg.Search.LocaleTag().String())
	assert.Contains(t, cfg.Database.DSN(), "dbname=rental")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("HTTP_PORT", "7070")

	cfg, err := Load(writeConfig(t, sample))

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		assert.Error(t, err)
	})

	t.Run("bad env port", func(t *testing.T) {
		t.Setenv("DB_PORT", "five")
		_, err := Load(writeConfig(t, sample))
		assert.Error(t, err)
	})

	t.Run("missing database host", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[database]\ndbname = \"rental\"\n"))
		assert.Error(t, err)
	})

	t.Run("redis enabled without address", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[database]\nhost = \"db\"\ndbname = \"rental\"\n[redis]\nenabled = true\n"))
		assert.Error(t, err)
	})
}
