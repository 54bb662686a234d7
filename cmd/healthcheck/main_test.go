package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/localnerve/jam-build-entities/internal/config"
	"github.com/localnerve/jam-build-entities/internal/services"
	"github.com/localnerve/jam-build-entities/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportHealthyDatabase(t *testing.T) {
	cfg := &config.Config{DBType: "sqlite-pure", DBDatabase: "entities.db"}
	var out bytes.Buffer

	healthy, err := report(context.Background(), cfg, testutil.OpenDB(t), zerolog.Nop(), &out)
	require.NoError(t, err)
	assert.True(t, healthy)

	var result services.HealthCheckResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, "disabled", result.Authorizer)
}

func TestReportClosedDatabase(t *testing.T) {
	cfg := &config.Config{DBType: "sqlite-pure", DBDatabase: "entities.db"}
	db := testutil.OpenDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	var out bytes.Buffer
	healthy, err := report(context.Background(), cfg, db, zerolog.Nop(), &out)
	require.NoError(t, err)
	assert.False(t, healthy)
	assert.Contains(t, out.String(), `"status"`)
}
