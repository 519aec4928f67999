// Package config loads stocktake configuration from the user config file
// and STOCKTAKE_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "stocktake"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
)

// Config controls column naming and CLI defaults. Every field has a working
// default; the config file and environment only override.
type Config struct {
	InventoryDir      string `yaml:"inventory_dir,omitempty"`
	CategoryColumn    string `yaml:"category_column,omitempty"`
	QuantityColumn    string `yaml:"quantity_column,omitempty"`
	PriceColumn       string `yaml:"price_column,omitempty"`
	DefaultShowRows   int    `yaml:"default_show_rows,omitempty"`
	DefaultReportPath string `yaml:"default_report_path,omitempty"`
	LogLevel          string `yaml:"log_level,omitempty"`
	Env               string `yaml:"env,omitempty"` // development gets console logs, anything else JSON
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CategoryColumn:    "category",
		QuantityColumn:    "quantity",
		PriceColumn:       "price",
		DefaultShowRows:   5,
		DefaultReportPath: "summary_report.csv",
		LogLevel:          "info",
		Env:               "production",
	}
}

// Path returns the path to the config file. Respects XDG_CONFIG_HOME,
// defaults to ~/.config/stocktake/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads the configuration: built-in defaults, then the config file if
// present, then a .env file in the working directory, then STOCKTAKE_*
// environment variables. A missing config file is not an error.
func Load() (Config, error) {
	// Best effort; a missing .env is the normal case.
	_ = godotenv.Load()

	return LoadFrom(Path())
}

// LoadFrom is Load with an explicit config file path, for tests.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults apply.
		case err != nil:
			return cfg, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	applyEnv(&cfg)

	if cfg.DefaultShowRows <= 0 {
		cfg.DefaultShowRows = Default().DefaultShowRows
	}

	return cfg, nil
}

// applyEnv overrides config fields from STOCKTAKE_* variables.
func applyEnv(cfg *Config) {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setString("STOCKTAKE_DIR", &cfg.InventoryDir)
	setString("STOCKTAKE_CATEGORY_COLUMN", &cfg.CategoryColumn)
	setString("STOCKTAKE_QUANTITY_COLUMN", &cfg.QuantityColumn)
	setString("STOCKTAKE_PRICE_COLUMN", &cfg.PriceColumn)
	setString("STOCKTAKE_REPORT_PATH", &cfg.DefaultReportPath)
	setString("STOCKTAKE_LOG_LEVEL", &cfg.LogLevel)
	setString("STOCKTAKE_ENV", &cfg.Env)

	if v := os.Getenv("STOCKTAKE_SHOW_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DefaultShowRows = n
		}
	}
}

// Save writes the configuration to path, creating parent directories.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
