package handlers

import (
	"github.com/edumitra/edumitra-api/database"
	"github.com/edumitra/edumitra-api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// HandleCheckHealth reports API and database health
func HandleCheckHealth(store database.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := store.HealthCheck(); err != nil {
			return response.Error(c, fiber.StatusServiceUnavailable, "Database unavailable", "SERVICE_UNAVAILABLE")
		}
		return response.Success(c, fiber.Map{"status": "ok"})
	}
}
