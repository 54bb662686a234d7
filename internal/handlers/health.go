package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-entities/internal/config"
	"github.com/localnerve/jam-build-entities/internal/services"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// HealthHandler serves the management health endpoint
type HealthHandler struct {
	Config *config.Config
	DB     *gorm.DB
	Log    zerolog.Logger
}

// Health handles GET /management/health
// @Summary Service health
// @Description Database and Authorizer reachability
// @Tags Management
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /management/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	result := services.HealthCheck(ctx, h.Config, h.DB, h.Log)
	status := fiber.StatusOK
	if !result.Healthy() {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
