package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.yaml")
	content := `
database:
  host: db.internal
  port: "5432"
singleton:
  value: BAR
  callers: 8
records:
  station_name: Central
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "new-user", cfg.Database.User) // untouched default
	assert.Equal(t, "BAR", cfg.Singleton.Value)
	assert.Equal(t, 8, cfg.Singleton.Callers)
	assert.Equal(t, "Central", cfg.Records.StationName)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: [unclosed"), 0644))

	_, err := Load(path, "")
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("PATTERNS_DB_USER=from-dotenv\n"), 0644))
	t.Setenv("PATTERNS_DB_HOST", "from-env")
	t.Setenv("PATTERNS_CALLERS", "12")
	t.Cleanup(func() { os.Unsetenv("PATTERNS_DB_USER") })

	cfg, err := Load("", envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Host)
	assert.Equal(t, "from-dotenv", cfg.Database.User)
	assert.Equal(t, 12, cfg.Singleton.Callers)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("callers not a number", func(t *testing.T) {
		t.Setenv("PATTERNS_CALLERS", "many")
		_, err := Load("", "")
		assert.Error(t, err)
	})

	t.Run("callers below one", func(t *testing.T) {
		t.Setenv("PATTERNS_CALLERS", "0")
		_, err := Load("", "")
		assert.ErrorContains(t, err, "singleton.callers")
	})
}
