package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inDir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		viper.Reset()
	})
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	inDir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.scryfall.com", cfg.Scryfall.BaseURL)
	assert.Equal(t, 4, cfg.Scryfall.MaxWorkers)
	assert.Equal(t, 500, cfg.Bulk.BatchSize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	inDir(t, dir)

	yaml := []byte("scryfall:\n  max_workers: 8\n  timeout: 5\nbulk:\n  batch_size: 50\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644))
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Scryfall.MaxWorkers)
	assert.Equal(t, 5, cfg.Scryfall.Timeout)
	assert.Equal(t, 50, cfg.Bulk.BatchSize)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	inDir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("scryfall:\n  max_workers: 0\n"), 0o644))

	_, err := Load()
	assert.ErrorContains(t, err, "max_workers")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5433, Name: "cards", User: "u", Password: "p"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=cards sslmode=disable", d.DSN())
}
