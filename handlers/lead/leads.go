package lead

import (
	"errors"

	"github.com/edumitra/edumitra-api/services"
	"github.com/edumitra/edumitra-api/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LeadHandler handles public lead capture
type LeadHandler struct {
	db          *gorm.DB
	leadService *services.LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(db *gorm.DB, leadService *services.LeadService) *LeadHandler {
	return &LeadHandler{
		db:          db,
		leadService: leadService,
	}
}

// Create handles POST /api/v1/leads — full wizard submission
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var input services.LeadInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	lead, err := h.leadService.Create(c.Context(), input)
	if err != nil {
		var vf *services.ValidationFailure
		if errors.As(err, &vf) {
			return response.MissingFields(c, vf.MissingFields)
		}
		return response.InternalServerError(c, "Failed to submit your details. Please try again.")
	}

	return response.Success(c, fiber.Map{
		"leadId": lead.ID,
	})
}

// QuickConnect handles POST /api/v1/leads/quick-connect — the short
// "request a callback" form. Same pipeline, different source tag.
func (h *LeadHandler) QuickConnect(c *fiber.Ctx) error {
	var input services.LeadInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input.Source = "quick-connect"
	input.SelectedPrograms = nil

	lead, err := h.leadService.Create(c.Context(), input)
	if err != nil {
		var vf *services.ValidationFailure
		if errors.As(err, &vf) {
			return response.MissingFields(c, vf.MissingFields)
		}
		return response.InternalServerError(c, "Failed to submit your details. Please try again.")
	}

	return response.Success(c, fiber.Map{
		"leadId": lead.ID,
	})
}
