package utils

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-entities/internal/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPingService(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	ctx := context.Background()
	assert.NoError(t, PingService(ctx, "http://"+ln.Addr().String(), time.Second))
	assert.Error(t, PingService(ctx, "::not a url", time.Second))
	assert.Error(t, PingService(ctx, "/relative/only", time.Second))

	addr := ln.Addr().String()
	ln.Close()
	assert.Error(t, PingService(ctx, "http://"+addr, 200*time.Millisecond))
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler("myApp", zerolog.Nop())})
	app.Get("/custom", func(c *fiber.Ctx) error {
		return types.IDAlreadyExists("a")
	})
	app.Get("/fiber", func(c *fiber.Ctx) error {
		return fiber.ErrMethodNotAllowed
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		return errors.New("db exploded")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/custom", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "error.idexists", resp.Header.Get("X-myApp-error"))
	assert.Equal(t, "a", resp.Header.Get("X-myApp-params"))

	var body ErrorResponseStruct
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, types.KindIDAlreadyExists, body.Type)
	assert.Equal(t, "a", body.EntityName)
	assert.Equal(t, "idexists", body.ErrorKey)
	assert.False(t, body.Ok)
	assert.Equal(t, "/custom", body.URL)

	resp, err = app.Test(httptest.NewRequest("GET", "/fiber", nil))
	require.NoError(t, err)
	assert.Equal(t, 405, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/plain", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	body = ErrorResponseStruct{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Internal Server Error", body.Message)
}
