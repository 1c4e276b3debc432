package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig("")
	assert.Equal(t, "gamekiosk", cfg.System.Appid)
	assert.Equal(t, 1816, cfg.Web.Port)
	assert.Equal(t, 12, cfg.Kiosk.ItemsPerPage)
	assert.Equal(t, "AGS", cfg.Kiosk.OrderPrefix)
}

func TestLoadConfigFromFile(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "gamekiosk.yml")
	require.NoError(t, os.WriteFile(cfile, []byte(`
web:
  port: 9090
kiosk:
  items_per_page: 24
  order_prefix: TST
`), 0o644))

	cfg := LoadConfig(cfile)
	assert.Equal(t, 9090, cfg.Web.Port)
	assert.Equal(t, 24, cfg.Kiosk.ItemsPerPage)
	assert.Equal(t, "TST", cfg.Kiosk.OrderPrefix)
	// untouched sections keep defaults
	assert.Equal(t, "Africa/Casablanca", cfg.System.Location)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GAMEKIOSK_WEB_PORT", "8081")
	t.Setenv("GAMEKIOSK_SYSTEM_DEBUG", "false")
	t.Setenv("GAMEKIOSK_STORAGE_PATH", "/tmp/kiosk-test.db")

	cfg := LoadConfig("")
	assert.Equal(t, 8081, cfg.Web.Port)
	assert.False(t, cfg.System.Debug)
	assert.Equal(t, "/tmp/kiosk-test.db", cfg.GetStoragePath())
}

func TestGetStoragePathResolvesAgainstWorkdir(t *testing.T) {
	cfg := LoadConfig("")
	assert.Equal(t, filepath.Join(cfg.System.Workdir, "kiosk.db"), cfg.GetStoragePath())
}

func TestInvalidPageSizeFallsBack(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "gamekiosk.yml")
	require.NoError(t, os.WriteFile(cfile, []byte("kiosk:\n  items_per_page: -1\n"), 0o644))
	cfg := LoadConfig(cfile)
	assert.Equal(t, 12, cfg.Kiosk.ItemsPerPage)
}
