package admin

import (
	"github.com/edumitra/edumitra-api/services"
	"github.com/edumitra/edumitra-api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler serves the admin dashboard summary
type AnalyticsHandler struct {
	analytics *services.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analytics *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Dashboard handles GET /api/v1/admin/analytics/dashboard
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.analytics.GetDashboardStats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load dashboard stats")
	}
	return response.Success(c, stats)
}
