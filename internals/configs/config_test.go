package configs

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormLogger "gorm.io/gorm/logger"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, time.UTC.String(), cfg.Location().String())
}

func TestParseFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", " SQLite ")
	t.Setenv("SQLITE_PATH", "/tmp/charity-test.db")
	t.Setenv("APP_TIMEZONE", "Asia/Jakarta")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/charity-test.db", cfg.SQLitePath)
	assert.Equal(t, "Asia/Jakarta", cfg.Location().String())
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestParseRejectsBadValues(t *testing.T) {
	t.Run("driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")
		_, err := Parse()
		assert.ErrorContains(t, err, "DB_DRIVER")
	})
	t.Run("timezone", func(t *testing.T) {
		t.Setenv("APP_TIMEZONE", "Mars/Olympus")
		_, err := Parse()
		assert.ErrorContains(t, err, "APP_TIMEZONE")
	})
	t.Run("timeout", func(t *testing.T) {
		t.Setenv("REQUEST_TIMEOUT", "0s")
		_, err := Parse()
		assert.ErrorContains(t, err, "REQUEST_TIMEOUT")
	})
	t.Run("malformed duration", func(t *testing.T) {
		t.Setenv("REQUEST_TIMEOUT", "soon")
		_, err := Parse()
		assert.Error(t, err)
	})
}

func TestPostgresDSN(t *testing.T) {
	cfg := Config{
		DBHost:               "db",
		DBPort:               "5432",
		DBUser:               "app",
		DBPassword:           "p@ss word",
		DBName:               "charity",
		DBSSLMode:            "require",
		DBStatementTimeoutMS: 3000,
	}
	dsn := cfg.PostgresDSN()

	assert.True(t, strings.HasPrefix(dsn, "postgres://app:p%40ss%20word@db:5432/charity?"), dsn)
	assert.Contains(t, dsn, "sslmode=require")
	assert.Contains(t, dsn, "statement_timeout%3D3000")
}

func TestParseGormLogLevel(t *testing.T) {
	assert.Equal(t, gormLogger.Silent, ParseGormLogLevel("silent"))
	assert.Equal(t, gormLogger.Error, ParseGormLogLevel("ERROR"))
	assert.Equal(t, gormLogger.Info, ParseGormLogLevel(" info "))
	assert.Equal(t, gormLogger.Warn, ParseGormLogLevel("warn"))
	assert.Equal(t, gormLogger.Warn, ParseGormLogLevel("loud"))
}
