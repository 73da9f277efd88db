package auth

import (
	"github.com/edumitra/edumitra-api/model"
	"github.com/edumitra/edumitra-api/utils/auth"
	"github.com/edumitra/edumitra-api/utils/middleware"
	"github.com/edumitra/edumitra-api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// RefreshRequest carries the refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Refresh handles POST /api/v1/admin/auth/refresh
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.RefreshToken == "" {
		return response.BadRequest(c, "Refresh token is required")
	}

	claims, err := h.jwtManager.ValidateToken(req.RefreshToken)
	if err != nil {
		if err == auth.ErrExpiredToken {
			return response.Unauthorized(c, "Refresh token has expired")
		}
		return response.Unauthorized(c, "Invalid refresh token")
	}
	if claims.TokenType != "refresh" {
		return response.Unauthorized(c, "Invalid token type")
	}

	// Refresh tokens are revocable too
	isRevoked, err := h.blacklistService.IsTokenRevoked(c.Context(), claims.ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to check token status")
	}
	if isRevoked {
		return response.Unauthorized(c, "Token has been revoked")
	}

	var admin model.AdminUser
	if err := h.db.First(&admin, claims.AdminID).Error; err != nil {
		return response.Unauthorized(c, "Admin account not found")
	}
	if admin.TokenVersion != claims.TokenVersion {
		return response.Unauthorized(c, "Token has been invalidated")
	}

	accessToken, _, err := h.jwtManager.GenerateAccessToken(admin.ID, admin.Email, admin.Role, admin.TokenVersion)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate access token")
	}

	return response.Success(c, fiber.Map{
		"token":      accessToken,
		"expires_in": int(h.jwtManager.AccessExpiry().Seconds()),
	})
}

// Logout handles POST /api/v1/admin/auth/logout — revokes the current token
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	jti, _ := middleware.GetTokenJTI(c)
	if jti != "" && claims.ExpiresAt != nil {
		err := h.blacklistService.RevokeToken(c.Context(), jti, claims.AdminID, claims.ExpiresAt.Time, "logout")
		if err != nil {
			return response.InternalServerError(c, "Failed to revoke token")
		}
	}

	return response.SuccessWithMessage(c, "Logged out successfully", nil)
}
