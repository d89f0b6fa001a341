package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DatabaseBackend selects the gorm dialect for the dock slot store
type DatabaseBackend string

const (
	DatabaseSQLite   DatabaseBackend = "sqlite"
	DatabasePostgres DatabaseBackend = "postgres"
	DatabaseMySQL    DatabaseBackend = "mysql"
)

// Output formats understood by the report writers
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatCSV   = "csv"
	FormatGantt = "gantt"
)

// Config covers process level configuration. Values come from an optional
// YAML file and are then overridden by DOCKPLAN_* environment variables.
type Config struct {
	Environment  string          `yaml:"environment"`
	DBBackend    DatabaseBackend `yaml:"db_backend"`
	DBDSN        string          `yaml:"db_dsn"`
	HTTPAddr     string          `yaml:"http_addr"`
	OutputDir    string          `yaml:"output_dir"`
	OutputFormat string          `yaml:"output_format"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Environment:  "development",
		DBBackend:    DatabaseSQLite,
		DBDSN:        "dockplan.db",
		HTTPAddr:     ":8080",
		OutputDir:    "",
		OutputFormat: FormatText,
	}
}

// Load reads environment variables, applies defaults, and validates the result.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile reads a YAML config file when path is set, then applies
// environment overrides and validates the result.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.Environment = getEnv("DOCKPLAN_ENV", cfg.Environment)
	cfg.DBBackend = DatabaseBackend(getEnv("DOCKPLAN_DB_BACKEND", string(cfg.DBBackend)))
	cfg.DBDSN = getEnv("DOCKPLAN_DB_DSN", cfg.DBDSN)
	cfg.HTTPAddr = getEnv("DOCKPLAN_HTTP_ADDR", cfg.HTTPAddr)
	cfg.OutputDir = getEnv("DOCKPLAN_OUTPUT_DIR", cfg.OutputDir)
	cfg.OutputFormat = getEnv("DOCKPLAN_OUTPUT_FORMAT", cfg.OutputFormat)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the backend and output format are supported
func (c *Config) Validate() error {
	c.DBBackend = DatabaseBackend(strings.ToLower(string(c.DBBackend)))
	switch c.DBBackend {
	case DatabaseSQLite, DatabasePostgres, DatabaseMySQL:
	default:
		return fmt.Errorf("unsupported database backend %q", c.DBBackend)
	}

	if c.DBDSN == "" {
		return errors.New("DOCKPLAN_DB_DSN is required")
	}

	c.OutputFormat = strings.ToLower(c.OutputFormat)
	switch c.OutputFormat {
	case FormatText, FormatJSON, FormatCSV, FormatGantt:
	default:
		return fmt.Errorf("unsupported output format %q", c.OutputFormat)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
