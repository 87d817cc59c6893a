package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the task manager application
type Config struct {
	Database    DatabaseConfig
	Validation  ValidationConfig
	Display     DisplayConfig
	Application ApplicationConfig
	Logging     LoggingConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TM_DB_DIR"`
	Filename       string        `env:"TM_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TM_DB_QUERY_TIMEOUT"`
	DirPermissions uint32        `env:"TM_DB_DIR_PERMISSIONS"`
}

// ValidationConfig holds the input-boundary validation rules
type ValidationConfig struct {
	TitleMaxLength       int `env:"TM_VALIDATION_TITLE_MAX"`
	DescriptionMaxLength int `env:"TM_VALIDATION_DESCRIPTION_MAX"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat string `env:"TM_TIME_DISPLAY_FORMAT"`
	DateOnly   bool   `env:"TM_DISPLAY_DATE_ONLY"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TM_APP_TIMEOUT"`
	Verbose bool          `env:"TM_APP_VERBOSE"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Environment string `env:"TM_LOG_ENV"`
	Level       string `env:"TM_LOG_LEVEL"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".taskman")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "taskman.db",
			QueryTimeout:   10 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TitleMaxLength:       100,
			DescriptionMaxLength: 500,
		},
		Display: DisplayConfig{
			TimeFormat: "2006-01-02 15:04",
			DateOnly:   false,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
		Logging: LoggingConfig{
			Environment: "development",
			Level:       "warn",
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
	if dir := os.Getenv("TM_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TM_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TM_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if perms := os.Getenv("TM_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Validation configuration
	if maxLen := os.Getenv("TM_VALIDATION_TITLE_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TitleMaxLength = n
		}
	}
	if maxLen := os.Getenv("TM_VALIDATION_DESCRIPTION_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.DescriptionMaxLength = n
		}
	}

	// Display configuration
	if format := os.Getenv("TM_TIME_DISPLAY_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}
	if dateOnly := os.Getenv("TM_DISPLAY_DATE_ONLY"); dateOnly != "" {
		if b, err := strconv.ParseBool(dateOnly); err == nil {
			c.Display.DateOnly = b
		}
	}

	// Application configuration
	if timeout := os.Getenv("TM_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TM_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	// Logging configuration
	if env := os.Getenv("TM_LOG_ENV"); env != "" {
		c.Logging.Environment = env
	}
	if level := os.Getenv("TM_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}

	if c.Validation.TitleMaxLength < 1 {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be at least 1"}
	}
	if c.Validation.DescriptionMaxLength < 0 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length cannot be negative"}
	}

	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}

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
