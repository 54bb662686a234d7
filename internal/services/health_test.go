package services

import (
	"context"
	"net"
	"testing"

	"github.com/localnerve/jam-build-entities/internal/config"
	"github.com/localnerve/jam-build-entities/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		DBType:     "sqlite-pure",
		DBDatabase: "entities.db",
		Entities:   config.AllEntities,
	}
}

func TestHealthCheckHealthy(t *testing.T) {
	db := testutil.OpenDB(t)

	result := HealthCheck(context.Background(), testConfig(), db, zerolog.Nop())

	assert.True(t, result.Healthy())
	assert.Equal(t, "ok", result.Database)
	assert.Equal(t, "disabled", result.Authorizer)
	assert.Equal(t, "sqlite-pure", result.Details["database_type"])
	assert.Empty(t, result.ErrorMessage)
}

func TestHealthCheckUnreachableAuthorizer(t *testing.T) {
	db := testutil.OpenDB(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	cfg := testConfig()
	cfg.AuthzURL = "http://" + addr
	cfg.AuthzClientID = "client"

	result := HealthCheck(context.Background(), cfg, db, zerolog.Nop())

	assert.False(t, result.Healthy())
	assert.Equal(t, "ok", result.Database)
	assert.Equal(t, "unreachable", result.Authorizer)
	assert.Contains(t, result.ErrorMessage, "Authorizer ping failed")
}

func TestHealthCheckClosedDatabase(t *testing.T) {
	db := testutil.OpenDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	result := HealthCheck(context.Background(), testConfig(), db, zerolog.Nop())

	assert.False(t, result.Healthy())
	assert.Equal(t, "unreachable", result.Database)
}

func TestValidateSessionRequiresClient(t *testing.T) {
	_, err := ValidateSession("cookie", []string{"user"})
	assert.Error(t, err)
	assert.False(t, IsAuthorizerInitialized())
}
