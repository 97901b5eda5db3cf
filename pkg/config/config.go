// Package config provides configuration management for UDb.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Verify.FixtureFile, Verify.Tables (per-command)
//   - Seed.File, Seed.Truncate (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use UDB_ prefix with underscores for nesting:
//
//	UDB_DATABASE_HOST=localhost
//	UDB_DATABASE_PORT=5432
//	UDB_LOG_LEVEL=info
//	UDB_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete UDb configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Verify contains settings specific to the verify command.
	Verify VerifyConfig `mapstructure:"verify" yaml:"verify"`

	// Seed contains settings specific to the seed command.
	Seed SeedConfig `mapstructure:"seed" yaml:"seed"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel
	// operations such as per-table column verification.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize defines the number of records per batch for bulk inserts
	// during seeding. Larger batches are faster but use more memory.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// VerifyConfig contains settings specific to the verify command.
type VerifyConfig struct {
	// FixtureFile is an optional YAML file with expected-schema
	// overrides. Empty string means the built-in expectations derived
	// from schema models are used as-is.
	// Runtime-only field, set by the --fixture flag.
	FixtureFile string `mapstructure:"fixture_file" yaml:"fixture_file"`

	// Tables limits verification to the given table names.
	// Empty slice means verify all known tables.
	// Runtime-only field, set by the --table flag.
	Tables []string `mapstructure:"tables" yaml:"tables"`

	// SkipProbes disables constraint probes, leaving only the read-only
	// column checks. Runtime-only field.
	SkipProbes bool `mapstructure:"skip_probes" yaml:"skip_probes"`
}

// SeedConfig contains settings specific to the seed command.
type SeedConfig struct {
	// File is the path to a SQLite file with sample user records.
	// Runtime-only field, set by the --file flag.
	File string `mapstructure:"file" yaml:"file"`

	// Truncate is true when existing rows should be removed before
	// seeding. Runtime-only field.
	Truncate bool `mapstructure:"truncate" yaml:"truncate"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "udbase",
			SSLMode:   "disable",
			BatchSize: 10_000,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
