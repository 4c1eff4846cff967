package handlers

import (
	"time"

	"github.com/edificio-gestion/backend/internal/database"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	status := fiber.StatusOK
	overall := "healthy"
	if err := database.Ping(); err != nil {
		dbStatus = "unreachable"
		overall = "degraded"
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status":    overall,
		"db":        dbStatus,
		"service":   "edificio-backend",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
