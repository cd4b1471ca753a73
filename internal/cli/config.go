// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the runtime settings of the CLI.
type Config struct {
	// CacheDir is where computed characters are persisted.
	CacheDir string
	// Workers caps the number of concurrent shape computations in batch
	// runs. Each shape runs on its own goroutine; no two goroutines share
	// a closure instance.
	Workers int
	// Rows fixes the number of variable rows r; 0 picks it per shape.
	Rows int
}

// fileConfig is the TOML key mapping.
type fileConfig struct {
	CacheDir string `toml:"cache_dir"`
	Workers  int    `toml:"workers"`
	Rows     int    `toml:"rows"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		CacheDir: ".diagharm-cache",
		Workers:  runtime.NumCPU(),
		Rows:     0,
	}
}

// LoadConfig overlays the TOML file at path onto the defaults. An empty
// path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if meta.IsDefined("cache_dir") {
		cfg.CacheDir = strings.TrimSpace(raw.CacheDir)
	}
	if meta.IsDefined("workers") {
		if raw.Workers < 1 {
			return Config{}, fmt.Errorf("load config: workers must be positive, got %d", raw.Workers)
		}
		cfg.Workers = raw.Workers
	}
	if meta.IsDefined("rows") {
		if raw.Rows < 0 {
			return Config{}, fmt.Errorf("load config: rows must be nonnegative, got %d", raw.Rows)
		}
		cfg.Rows = raw.Rows
	}

	return cfg, nil
}
