// Package config loads dashboard settings from an optional TOML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"

	"log/slog"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the config file consulted when --config is not given.
const DefaultFile = "usagedash.toml"

type Config struct {
	ListenAddr string `toml:"listen_addr"` // USAGEDASH_LISTEN_ADDR (default ":8080")
	DataFile   string `toml:"data_file"`   // USAGEDASH_DATA_FILE (default "usage_metrics.xlsx")
	LogLevel   string `toml:"log_level"`   // USAGEDASH_LOG_LEVEL (default "INFO")
}

// Load reads configuration: defaults, then the TOML file (if present), then
// environment overrides. A missing file is only an error when its path was
// given explicitly.
func Load(path string) (Config, error) {
	c := Config{
		ListenAddr: ":8080",
		DataFile:   "usage_metrics.xlsx",
		LogLevel:   "INFO",
	}

	explicit := path != ""
	if path == "" {
		path = DefaultFile
	}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		if explicit || !os.IsNotExist(err) {
			return c, fmt.Errorf("config %s: %w", path, err)
		}
	}

	c.ListenAddr = envOrDefault("USAGEDASH_LISTEN_ADDR", c.ListenAddr)
	c.DataFile = envOrDefault("USAGEDASH_DATA_FILE", c.DataFile)
	c.LogLevel = envOrDefault("USAGEDASH_LOG_LEVEL", c.LogLevel)
	return c, nil
}

// SlogLevel maps the configured level name onto a slog level.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
