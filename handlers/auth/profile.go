package auth

import (
	"github.com/edumitra/edumitra-api/utils/middleware"
	"github.com/edumitra/edumitra-api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// Me handles GET /api/v1/admin/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	admin, ok := middleware.GetAdmin(c)
	if !ok || admin == nil {
		return response.Unauthorized(c, "Authentication required")
	}

	return response.Success(c, AdminResponse{
		ID:          admin.ID,
		Email:       admin.Email,
		Name:        admin.Name,
		Role:        admin.Role,
		LastLoginAt: admin.LastLoginAt,
	})
}
