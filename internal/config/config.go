// Package config loads and persists clipvault's configuration.
//
// The config file lives in the platform config directory (overridable via
// CLIPVAULT_CONFIG_DIR) as config.yaml. Missing values fall back to defaults;
// a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxEntries         = 100
	DefaultPollingIntervalMS  = 1000
	DefaultDebounceIntervalMS = 500
	DefaultImageDedupWindowMS = 1000
)

// Paths holds the resolved filesystem locations for the application.
type Paths struct {
	BaseDir    string `json:"base_dir" yaml:"base_dir"`
	DataDir    string `json:"data_dir" yaml:"data_dir"`
	ConfigFile string `json:"config_file" yaml:"config_file"`
	DBFile     string `json:"db_file" yaml:"db_file"`
}

// Config holds all application configuration.
type Config struct {
	// DeviceID identifies this installation; generated on first run.
	DeviceID string `json:"device_id" yaml:"device_id"`

	// History retention and capture cadence. Intervals are in milliseconds.
	MaxEntries         int   `json:"max_entries" yaml:"max_entries"`
	PollingIntervalMS  int64 `json:"polling_interval_ms" yaml:"polling_interval_ms"`
	DebounceIntervalMS int64 `json:"debounce_interval_ms" yaml:"debounce_interval_ms"`
	ImageDedupWindowMS int64 `json:"image_dedup_window_ms" yaml:"image_dedup_window_ms"`

	// Thumbnail reduction settings for image captures.
	Thumbnail ThumbnailConfig `json:"thumbnail" yaml:"thumbnail"`

	// Logging configuration.
	Log LogConfig `json:"log" yaml:"log"`

	// Resolved paths; not read from the config file.
	Paths Paths `json:"-" yaml:"-"`
}

// ThumbnailConfig controls image reduction before storage.
type ThumbnailConfig struct {
	MaxDimension uint    `json:"max_dimension" yaml:"max_dimension"`
	Quality      float64 `json:"quality" yaml:"quality"`
}

// LogConfig holds logging-related configuration.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"` // "json" or "console"
}

// PollingInterval returns the capture poll cadence as a duration.
func (c *Config) PollingInterval() time.Duration {
	return time.Duration(c.PollingIntervalMS) * time.Millisecond
}

// DebounceInterval returns the persistence quiet interval as a duration.
func (c *Config) DebounceInterval() time.Duration {
	return time.Duration(c.DebounceIntervalMS) * time.Millisecond
}

// ImageDedupWindow returns the image rate-limit window as a duration.
func (c *Config) ImageDedupWindow() time.Duration {
	return time.Duration(c.ImageDedupWindowMS) * time.Millisecond
}

// Default returns a configuration with all defaults filled in and paths
// resolved. The device ID is left empty; Load generates one.
func Default() (*Config, error) {
	paths, err := resolvePaths()
	if err != nil {
		return nil, err
	}

	return &Config{
		MaxEntries:         DefaultMaxEntries,
		PollingIntervalMS:  DefaultPollingIntervalMS,
		DebounceIntervalMS: DefaultDebounceIntervalMS,
		ImageDedupWindowMS: DefaultImageDedupWindowMS,
		Thumbnail: ThumbnailConfig{
			MaxDimension: 360,
			Quality:      0.65,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Paths: paths,
	}, nil
}

// Load reads the config file if present, fills defaults for anything unset,
// and persists the file back when it had to generate a device ID.
func Load() (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(cfg.Paths.ConfigFile)
	switch {
	case os.IsNotExist(err):
		// First run; keep defaults.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		cfg.applyDefaults()
	}

	if cfg.DeviceID == "" {
		cfg.DeviceID = uuid.New().String()
		if err := cfg.Save(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Save writes the configuration to its config file, creating directories as
// needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.Paths.ConfigFile), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.Paths.ConfigFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// applyDefaults backfills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	if c.MaxEntries <= 0 {
		c.MaxEntries = DefaultMaxEntries
	}
	if c.PollingIntervalMS <= 0 {
		c.PollingIntervalMS = DefaultPollingIntervalMS
	}
	if c.DebounceIntervalMS <= 0 {
		c.DebounceIntervalMS = DefaultDebounceIntervalMS
	}
	if c.ImageDedupWindowMS <= 0 {
		c.ImageDedupWindowMS = DefaultImageDedupWindowMS
	}
	if c.Thumbnail.MaxDimension == 0 {
		c.Thumbnail.MaxDimension = 360
	}
	if c.Thumbnail.Quality <= 0 || c.Thumbnail.Quality > 1 {
		c.Thumbnail.Quality = 0.65
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
}

// resolvePaths determines platform-specific directories, honoring the
// CLIPVAULT_CONFIG_DIR and CLIPVAULT_DATA_DIR environment overrides.
func resolvePaths() (Paths, error) {
	baseDir := os.Getenv("CLIPVAULT_CONFIG_DIR")
	if baseDir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return Paths{}, fmt.Errorf("failed to locate config directory: %w", err)
		}
		switch runtime.GOOS {
		case "darwin":
			baseDir = filepath.Join(configDir, "com.clipvault.clipvault")
		case "windows":
			baseDir = filepath.Join(configDir, "Clipvault")
		default:
			baseDir = filepath.Join(configDir, "clipvault")
		}
	}

	dataDir := os.Getenv("CLIPVAULT_DATA_DIR")
	if dataDir == "" {
		dataDir = filepath.Join(baseDir, "data")
	}

	return Paths{
		BaseDir:    baseDir,
		DataDir:    dataDir,
		ConfigFile: filepath.Join(baseDir, "config.yaml"),
		DBFile:     filepath.Join(dataDir, "history.db"),
	}, nil
}
