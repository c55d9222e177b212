package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFirstRunGeneratesDeviceID(t *testing.T) {
	t.Setenv("CLIPVAULT_CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.DeviceID)
	assert.Equal(t, DefaultMaxEntries, cfg.MaxEntries)
	assert.Equal(t, time.Second, cfg.PollingInterval())
	assert.Equal(t, 500*time.Millisecond, cfg.DebounceInterval())
	assert.Equal(t, time.Second, cfg.ImageDedupWindow())

	// First run persists the generated device ID.
	_, err = os.Stat(cfg.Paths.ConfigFile)
	assert.NoError(t, err)
}

func TestLoadIsStableAcrossRuns(t *testing.T) {
	t.Setenv("CLIPVAULT_CONFIG_DIR", t.TempDir())

	first, err := Load()
	require.NoError(t, err)

	second, err := Load()
	require.NoError(t, err)

	assert.Equal(t, first.DeviceID, second.DeviceID)
}

func TestLoadBackfillsPartialFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CLIPVAULT_CONFIG_DIR", dir)

	partial := "device_id: test-device\nmax_entries: 25\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(partial), 0600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-device", cfg.DeviceID)
	assert.Equal(t, 25, cfg.MaxEntries)
	assert.Equal(t, int64(DefaultPollingIntervalMS), cfg.PollingIntervalMS)
	assert.Equal(t, uint(360), cfg.Thumbnail.MaxDimension)
	assert.InDelta(t, 0.65, cfg.Thumbnail.Quality, 0.001)
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CLIPVAULT_CONFIG_DIR", dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0600))

	_, err := Load()
	assert.Error(t, err)
}

func TestPathsHonorDataDirOverride(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	t.Setenv("CLIPVAULT_CONFIG_DIR", configDir)
	t.Setenv("CLIPVAULT_DATA_DIR", dataDir)

	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(configDir, "config.yaml"), cfg.Paths.ConfigFile)
	assert.Equal(t, filepath.Join(dataDir, "history.db"), cfg.Paths.DBFile)
}
