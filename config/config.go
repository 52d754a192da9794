// Package config loads the shared configuration for the wellpipe binaries.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds everything the three binaries need. One file serves all of
// them; each binary reads the sections it cares about.
type Config struct {
	// PDFDir is the directory of completion-report PDFs to ingest.
	PDFDir string `yaml:"pdf_dir"`

	// DBPath is the SQLite database file.
	DBPath string `yaml:"db_path"`

	// Listen is the API server address.
	Listen string `yaml:"listen"`

	// Workers bounds concurrent PDF extraction in the ingest pipeline.
	Workers int `yaml:"workers"`

	// OCRDPI is the pdftoppm render resolution for scanned reports.
	OCRDPI int `yaml:"ocr_dpi"`

	// Registry configures the public-registry scraper.
	Registry RegistryConfig `yaml:"registry"`

	// LogLevel is debug, info, warn, or error.
	LogLevel string `yaml:"log_level"`
}

// RegistryConfig configures the scrape run.
type RegistryConfig struct {
	BaseURL    string `yaml:"base_url"`
	DelayMinMS int    `yaml:"delay_min_ms"`
	DelayMaxMS int    `yaml:"delay_max_ms"`
	FailureCSV string `yaml:"failure_csv"`
}

// DefaultConfig returns sane defaults.
func DefaultConfig() *Config {
	return &Config{
		PDFDir:   "pdfs",
		DBPath:   "wells.db",
		Listen:   ":8080",
		Workers:  4,
		OCRDPI:   300,
		LogLevel: "info",
		Registry: RegistryConfig{
			BaseURL:    "https://www.drillingedge.com",
			DelayMinMS: 700,
			DelayMaxMS: 1600,
			FailureCSV: "scrape_failures.csv",
		},
	}
}

// LoadConfig reads a YAML config file over the defaults, then applies
// environment overrides. An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, cfg.Validate()
}

// applyEnv lets deployment environments override the file without editing it.
func (c *Config) applyEnv() {
	if v := os.Getenv("WELLPIPE_PDF_DIR"); v != "" {
		c.PDFDir = v
	}
	if v := os.Getenv("WELLPIPE_DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("WELLPIPE_LISTEN"); v != "" {
		c.Listen = v
	}
	if v := os.Getenv("WELLPIPE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("WELLPIPE_REGISTRY_URL"); v != "" {
		c.Registry.BaseURL = v
	}
	if v := os.Getenv("WELLPIPE_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Workers = n
		}
	}
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be > 0")
	}
	if c.OCRDPI <= 0 {
		return fmt.Errorf("ocr_dpi must be > 0")
	}
	if c.Registry.DelayMinMS < 0 || c.Registry.DelayMaxMS < c.Registry.DelayMinMS {
		return fmt.Errorf("registry delay bounds are inverted")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log_level %q", c.LogLevel)
	}
	return nil
}
