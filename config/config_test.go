package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))

	assert.Equal(t, "memory", cfg.Database.Type)
	assert.Equal(t, 5000, cfg.Web.Port)
	assert.Equal(t, "development", cfg.Logger.Mode)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfile := filepath.Join(dir, "lauremed.yml")
	content := `
system:
  appid: lauremed
  location: UTC
  workdir: /tmp/lauremed
web:
  host: 127.0.0.1
  port: 8090
database:
  type: postgres
  host: db.internal
  port: 5432
  name: catalog
  user: catalog
logger:
  mode: production
`
	require.NoError(t, os.WriteFile(cfile, []byte(content), 0o644))

	cfg := LoadConfig(cfile)
	assert.Equal(t, "127.0.0.1", cfg.Web.Host)
	assert.Equal(t, 8090, cfg.Web.Port)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "production", cfg.Logger.Mode)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("LAUREMED_WEB_PORT", "9001")
	t.Setenv("LAUREMED_DB_TYPE", "postgres")

	cfg := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Equal(t, 9001, cfg.Web.Port)
	assert.Equal(t, "postgres", cfg.Database.Type)
}
