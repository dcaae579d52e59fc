package config_test

import (
	"testing"
	"time"

	"dailytodo/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_PORT", "5432")
	t.Setenv("JWT_EXPIRY_HOURS", "24")

	cfg := config.Load()

	assert.Equal(t, config.DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 3, cfg.UpsertRetries)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/tasks.db")
	t.Setenv("JWT_EXPIRY_HOURS", "2")
	t.Setenv("UPSERT_RETRIES", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://todo.example.com ,")

	cfg := config.Load()

	assert.Equal(t, config.DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/tasks.db", cfg.SQLitePath)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 5, cfg.UpsertRetries)
	assert.Equal(t, []string{"http://localhost:3000", "https://todo.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY_HOURS", "soon")
	t.Setenv("UPSERT_RETRIES", "-1")

	cfg := config.Load()

	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 3, cfg.UpsertRetries)
}

func TestConfig_DSN(t *testing.T) {
	cfg := &config.Config{
		DBHost: "db", DBPort: "5433", DBUser: "u", DBPassword: "p", DBName: "n", DBSSLMode: "require",
	}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=n sslmode=require", cfg.DSN())
}
