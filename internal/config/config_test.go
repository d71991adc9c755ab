package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "./data/naraigoto.db", cfg.Database.Path)
	assert.Equal(t, "./migrations", cfg.Database.MigrationsPath)
	assert.Equal(t, 1, cfg.Database.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "school", cfg.Review.DefaultTargetType)
	assert.Equal(t, 1000, cfg.Review.MaxCommentLength)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/var/lib/naraigoto.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/var/lib/naraigoto.db", cfg.Database.Path)
}

func TestDatabaseConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*DatabaseConfig)
		wantErr string
	}{
		{"empty path", func(c *DatabaseConfig) { c.Path = "" }, "database path"},
		{"empty migrations", func(c *DatabaseConfig) { c.MigrationsPath = "" }, "migrations path"},
		{"zero open conns", func(c *DatabaseConfig) { c.MaxOpenConns = 0 }, "open connections"},
		{"zero idle conns", func(c *DatabaseConfig) { c.MaxIdleConns = 0 }, "idle connections"},
		{"short lifetime", func(c *DatabaseConfig) { c.ConnMaxLifetime = time.Second }, "lifetime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDatabaseConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadDatabaseConfigFromEnv(t *testing.T) {
	t.Setenv("DB_PATH", "/data/custom.db")
	t.Setenv("DB_MAX_OPEN_CONNS", "4")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg := LoadDatabaseConfigFromEnv()

	assert.Equal(t, "/data/custom.db", cfg.Path)
	assert.Equal(t, 4, cfg.MaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
	assert.False(t, cfg.AutoMigrate)
}

func TestLoadDatabaseConfigFromEnv_IgnoresGarbage(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "lots")
	t.Setenv("DB_CONN_MAX_LIFETIME", "soon")

	cfg := LoadDatabaseConfigFromEnv()

	// Unparseable values fall back to defaults
	assert.Equal(t, 1, cfg.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.ConnMaxLifetime)
}

func TestAdaptConfigForServerless_NoOpOutsideLambda(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	adapted := AdaptConfigForServerless(cfg)
	assert.Equal(t, "./data/naraigoto.db", adapted.Database.Path)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BOOL", "true")

	assert.Equal(t, "value", GetEnv("TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", GetEnv("TEST_ABSENT", "fallback"))
	assert.Equal(t, 42, GetEnvAsInt("TEST_INT", 7))
	assert.Equal(t, 7, GetEnvAsInt("TEST_ABSENT", 7))
	assert.True(t, GetEnvAsBool("TEST_BOOL", false))
	assert.False(t, GetEnvAsBool("TEST_ABSENT", false))
}
