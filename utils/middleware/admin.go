package middleware

import (
	"github.com/edumitra/edumitra-api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// RequireRole ensures the authenticated admin has one of the given roles.
// Must run after AuthMiddleware.Required.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("admin_role").(string)
		if !ok || role == "" {
			return response.Unauthorized(c, "Authentication required")
		}

		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		return response.Forbidden(c, "Insufficient permissions")
	}
}
