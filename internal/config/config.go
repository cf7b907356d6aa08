package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the goalflow application
type Config struct {
	Database    DatabaseConfig
	Validation  ValidationConfig
	Recurrence  RecurrenceConfig
	Sales       SalesConfig
	Application ApplicationConfig
}

// DatabaseConfig holds storage-related configuration
type DatabaseConfig struct {
	Dir            string `env:"GOALFLOW_DB_DIR"`
	Filename       string `env:"GOALFLOW_DB_FILENAME"`
	DirPermissions uint32 `env:"GOALFLOW_DB_DIR_PERMISSIONS"`
}

// ValidationConfig holds input validation rules configuration
type ValidationConfig struct {
	DescriptionMinLength int `env:"GOALFLOW_VALIDATION_DESCRIPTION_MIN"`
	DescriptionMaxLength int `env:"GOALFLOW_VALIDATION_DESCRIPTION_MAX"`
}

// RecurrenceConfig holds recurring-task expansion configuration
type RecurrenceConfig struct {
	WindowDays int `env:"GOALFLOW_RECURRENCE_WINDOW"`
}

// SalesConfig holds sales-goal configuration
type SalesConfig struct {
	DefaultGoal float64 `env:"GOALFLOW_DEFAULT_SALES_GOAL"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"GOALFLOW_APP_TIMEOUT"`
	Verbose bool          `env:"GOALFLOW_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".goalflow")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "goalflow.db",
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			DescriptionMinLength: 3,
			DescriptionMaxLength: 255,
		},
		Recurrence: RecurrenceConfig{
			WindowDays: 7,
		},
		Sales: SalesConfig{
			DefaultGoal: 1000,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("GOALFLOW_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("GOALFLOW_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if perms := os.Getenv("GOALFLOW_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Validation configuration
	if minLen := os.Getenv("GOALFLOW_VALIDATION_DESCRIPTION_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.DescriptionMinLength = n
		}
	}
	if maxLen := os.Getenv("GOALFLOW_VALIDATION_DESCRIPTION_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.DescriptionMaxLength = n
		}
	}

	// Recurrence configuration
	if window := os.Getenv("GOALFLOW_RECURRENCE_WINDOW"); window != "" {
		if n, err := strconv.Atoi(window); err == nil {
			c.Recurrence.WindowDays = n
		}
	}

	// Sales configuration
	if goal := os.Getenv("GOALFLOW_DEFAULT_SALES_GOAL"); goal != "" {
		if g, err := strconv.ParseFloat(goal, 64); err == nil {
			c.Sales.DefaultGoal = g
		}
	}

	// Application configuration
	if timeout := os.Getenv("GOALFLOW_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("GOALFLOW_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}

	// Validate validation configuration
	if c.Validation.DescriptionMinLength < 1 {
		return &ConfigError{Field: "validation.description_min_length", Message: "description minimum length must be at least 1"}
	}
	if c.Validation.DescriptionMaxLength < c.Validation.DescriptionMinLength {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length must be greater than minimum length"}
	}

	// Validate recurrence configuration
	if c.Recurrence.WindowDays < 1 {
		return &ConfigError{Field: "recurrence.window_days", Message: "recurrence window must be at least 1 day"}
	}

	// Validate sales configuration
	if c.Sales.DefaultGoal <= 0 {
		return &ConfigError{Field: "sales.default_goal", Message: "default sales goal must be positive"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
