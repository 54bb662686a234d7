package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-entities/internal/config"
	"github.com/localnerve/jam-build-entities/internal/services"
	"github.com/localnerve/jam-build-entities/internal/types"
	"github.com/rs/zerolog"
)

// SessionCookie is the Authorizer session cookie name
const SessionCookie = "cookie_session"

// replaced in tests
var (
	initAuthorizer  = services.InitAuthorizer
	validateSession = services.ValidateSession
)

// AuthAdmin requires a session with the admin role
func AuthAdmin(cfg *config.Config, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, cfg, log, []string{"admin"})
	}
}

// AuthUser requires a session with the user role
func AuthUser(cfg *config.Config, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, cfg, log, []string{"user"})
	}
}

func authorize(c *fiber.Ctx, cfg *config.Config, log zerolog.Logger, roles []string) error {
	session := c.Cookies(SessionCookie)
	if session == "" {
		return types.Forbidden(fmt.Sprintf("Authorizer cookie %q not found", SessionCookie))
	}

	if err := initAuthorizer(c.UserContext(), cfg, log, c.Protocol(), c.Hostname()); err != nil {
		log.Error().Err(err).Msg("Authorizer unavailable")
		return types.Forbidden("Authorizer unavailable")
	}

	user, err := validateSession(session, roles)
	if err != nil {
		return types.Forbidden(fmt.Sprintf("Invalid session: %v", err))
	}

	c.Locals("user", user)
	return c.Next()
}
