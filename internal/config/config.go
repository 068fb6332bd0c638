package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the bacy tool.
type Config struct {
	// Table cipher
	UseEncryption bool `yaml:"use_encryption"`

	// Logging: debug, info, warn or error
	LogLevel string `yaml:"log_level"`

	CRC CRCConfig `yaml:"crc"`
	Zip ZipConfig `yaml:"zip"`

	// Concurrent file operations
	Workers int `yaml:"workers"`

	// Catalog index
	Database DatabaseConfig `yaml:"database"`
}

// CRCConfig tunes the forging engine.
type CRCConfig struct {
	BufferSize int    `yaml:"buffer_size"` // bytes
	Solver     string `yaml:"solver"`      // fast or generic
}

// ZipConfig tunes table archive handling.
type ZipConfig struct {
	PasswordLength int `yaml:"password_length"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Values of crc.solver.
const (
	// SolverFast multiplies by the precomputed CRC-32 inverse.
	SolverFast = "fast"
	// SolverGeneric runs the extended Euclidean solver.
	SolverGeneric = "generic"
)

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		UseEncryption: false,
		LogLevel:      "info",
		CRC: CRCConfig{
			BufferSize: 0x2000,
			Solver:     SolverFast,
		},
		Zip: ZipConfig{
			PasswordLength: 20,
		},
		Workers: 4,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "bacy",
			Password: "bacy",
			DBName:   "bacy",
			SSLMode:  "disable",
		},
	}
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.CRC.Solver != SolverFast && c.CRC.Solver != SolverGeneric {
		return fmt.Errorf("crc.solver must be %q or %q, got %q", SolverFast, SolverGeneric, c.CRC.Solver)
	}
	if c.CRC.BufferSize < 0 {
		return fmt.Errorf("crc.buffer_size must not be negative")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Zip.PasswordLength <= 0 || c.Zip.PasswordLength%4 != 0 {
		return fmt.Errorf("zip.password_length must be a positive multiple of 4, got %d", c.Zip.PasswordLength)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
