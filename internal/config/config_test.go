package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
  port: 5432
  user: app
  database: rental
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 2, cfg.Rental.BufferDays)
	assert.Equal(t, "0 0 1 * * *", cfg.Scheduler.MarkOverdueRents)
	assert.Equal(t, "0 0 9 * * *", cfg.Scheduler.SendReturnReminders)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
  user: app
  database: rental
`)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_NegativeBufferRejected(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
  user: app
  database: rental
rental:
  buffer_days: -1
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestGetDatabaseConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database = DatabaseConfig{
		Host: "localhost", Port: 5432, User: "app", Password: "secret",
		Database: "rental", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=app password=secret dbname=rental sslmode=disable",
		cfg.GetDatabaseConnectionString())
}
