package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenlease/greenlease/internal/config"
	"github.com/greenlease/greenlease/internal/services"
	"gorm.io/gorm"
)

// HealthHandler reports service health
type HealthHandler struct {
	Config *config.Config
	DB     *gorm.DB
}

// Health handles GET /api/health
// @Summary Service health
// @Description Database and Authorizer connectivity. Returns 503 when any dependency is unreachable.
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Config, h.DB)

	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
