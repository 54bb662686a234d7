package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ENV_FILE", "PORT", "APP_NAME", "ENTITIES", "REQUEST_TIMEOUT", "LOG_LEVEL",
		"DB_TYPE", "DB_HOST", "DB_PORT", "DB_DATABASE", "DB_USER", "DB_PASSWORD",
		"DB_CONNECTION_LIMIT", "AUTO_MIGRATE", "AUTHZ_URL", "AUTHZ_CLIENT_ID",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DATABASE", "test.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "myApp", cfg.AppName)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, AllEntities, cfg.Entities)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.AutoMigrate)
	assert.False(t, cfg.AuthEnabled())
}

func TestLoadRequiresDatabase(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	assert.ErrorContains(t, err, "DB_DATABASE")
}

func TestLoadRequiresUserForServerDatabases(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DATABASE", "entities")
	t.Setenv("DB_TYPE", "mysql")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_USER")
}

func TestLoadEntitiesSubset(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DATABASE", "test.db")
	t.Setenv("ENTITIES", " A, b ,,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, cfg.Entities)
	assert.True(t, cfg.HasEntity("b"))
	assert.False(t, cfg.HasEntity("c"))
}

func TestLoadRejectsUnknownEntity(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DATABASE", "test.db")
	t.Setenv("ENTITIES", "a,z")

	_, err := Load()
	assert.ErrorContains(t, err, `"z"`)
}

func TestLoadAuthorizerPair(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DATABASE", "test.db")
	t.Setenv("AUTHZ_URL", "http://authorizer:8080")

	_, err := Load()
	assert.ErrorContains(t, err, "AUTHZ_CLIENT_ID")

	t.Setenv("AUTHZ_CLIENT_ID", "client")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.AuthEnabled())
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DB_DATABASE=fromfile.db\nAPP_NAME=eds\n"), 0o600))
	t.Setenv("ENV_FILE", envFile)
	// godotenv does not override variables already present with a value
	os.Unsetenv("DB_DATABASE")
	os.Unsetenv("APP_NAME")
	t.Cleanup(func() {
		os.Unsetenv("DB_DATABASE")
		os.Unsetenv("APP_NAME")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fromfile.db", cfg.DBDatabase)
	assert.Equal(t, "eds", cfg.AppName)
}

func TestGetEnvAsIntFallsBack(t *testing.T) {
	t.Setenv("SOME_INT", "nope")
	assert.Equal(t, 7, getEnvAsInt("SOME_INT", 7))
	t.Setenv("SOME_INT", "12")
	assert.Equal(t, 12, getEnvAsInt("SOME_INT", 7))
}
