package handlers

import (
	"taxpilot/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler reports service readiness.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check pings the database and cache.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := fiber.Map{
		"service": "taxpilot-api",
		"status":  "ok",
	}

	dbStatus := "ok"
	if sqlDB, err := repositories.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "unreachable"
		status["status"] = "degraded"
	}
	status["database"] = dbStatus

	cacheStatus := "ok"
	if repositories.CacheService == nil {
		cacheStatus = "disabled"
	} else if err := repositories.CacheService.HealthCheck(c.Context()); err != nil {
		cacheStatus = "unreachable"
		status["status"] = "degraded"
	}
	status["cache"] = cacheStatus

	if status["status"] == "degraded" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(status)
	}
	return c.JSON(status)
}
