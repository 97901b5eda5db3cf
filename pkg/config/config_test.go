package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udbase/udb/pkg/config"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "udb"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "udb"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "udb", "logs"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Database defaults
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "postgres", cfg.Database.Password)
		assert.Equal(t, "udbase", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 10_000, cfg.Database.BatchSize)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		// JobsNumber defaults to CPU count
		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})
}

func TestOptionDatabaseHost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid host",
			input:    "db.example.com",
			expected: "db.example.com",
		},
		{
			name:     "trims whitespace",
			input:    "  db.example.com  ",
			expected: "db.example.com",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "localhost", // Should keep default
		},
		{
			name:     "ignores whitespace-only",
			input:    "   ",
			expected: "localhost", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabaseHost(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.Host)
		})
	}
}

func TestOptionDatabaseSSLMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid mode",
			input:    "require",
			expected: "require",
		},
		{
			name:     "lowercases input",
			input:    "VERIFY-FULL",
			expected: "verify-full",
		},
		{
			name:     "rejects unknown mode",
			input:    "sometimes",
			expected: "disable", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabaseSSLMode(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.SSLMode)
		})
	}
}

func TestOptionJobsNumber(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptJobsNumber(4)})
	assert.Equal(t, 4, cfg.JobsNumber)

	// Non-positive values are rejected, previous value kept.
	cfg.Update([]config.Option{config.OptJobsNumber(-1)})
	assert.Equal(t, 4, cfg.JobsNumber)
}

func TestOptionVerify(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptVerifyFixtureFile("fixtures/users.yaml"),
		config.OptVerifyTables([]string{"users", "sessions"}),
		config.OptVerifySkipProbes(true),
	})

	assert.Equal(t, "fixtures/users.yaml", cfg.Verify.FixtureFile)
	assert.Equal(t, []string{"users", "sessions"}, cfg.Verify.Tables)
	assert.True(t, cfg.Verify.SkipProbes)
}

func TestOptionSeed(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptSeedFile("testdata/users.sqlite"),
		config.OptSeedTruncate(true),
	})

	assert.Equal(t, "testdata/users.sqlite", cfg.Seed.File)
	assert.True(t, cfg.Seed.Truncate)
}

func TestToOptionsRoundTrip(t *testing.T) {
	orig := config.New()
	orig.Update([]config.Option{
		config.OptDatabaseHost("pg.internal"),
		config.OptDatabasePort(5433),
		config.OptDatabaseDatabase("accounts"),
		config.OptLogLevel("debug"),
		config.OptJobsNumber(2),
	})

	// Apply the exported options to a fresh config.
	cfg := config.New()
	cfg.Update(orig.ToOptions())

	assert.Equal(t, orig.Database, cfg.Database)
	assert.Equal(t, orig.Log, cfg.Log)
	assert.Equal(t, orig.JobsNumber, cfg.JobsNumber)

	// Runtime-only fields never round-trip.
	orig.Update([]config.Option{config.OptSeedFile("users.sqlite")})
	cfg2 := config.New()
	cfg2.Update(orig.ToOptions())
	assert.Empty(t, cfg2.Seed.File)
}
