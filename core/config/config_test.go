package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.NotEmpty(t, cfg.Manifest.URL)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Manifest.ArchiveSnapshots)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_NAME", ":memory:")
	t.Setenv("MANIFEST_URL", "http://example.test/manifest")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.Name)
	assert.Equal(t, "http://example.test/manifest", cfg.Manifest.URL)
	assert.Equal(t, "json", cfg.Log.Format)
}
