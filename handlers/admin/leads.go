package admin

import (
	"strconv"

	"github.com/edumitra/edumitra-api/model"
	"github.com/edumitra/edumitra-api/services"
	"github.com/edumitra/edumitra-api/utils/response"
	"github.com/edumitra/edumitra-api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LeadHandler handles admin lead management
type LeadHandler struct {
	db          *gorm.DB
	leadService *services.LeadService
}

// NewLeadHandler creates a new admin lead handler
func NewLeadHandler(db *gorm.DB, leadService *services.LeadService) *LeadHandler {
	return &LeadHandler{
		db:          db,
		leadService: leadService,
	}
}

// UpdateLeadRequest is the partial field set accepted by PATCH. Pointers
// distinguish "absent" from "set to zero value".
type UpdateLeadRequest struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Status   *string `json:"status"`
	Notes    *string `json:"notes"`

	State         *string `json:"state"`
	City          *string `json:"city"`
	BudgetRange   *string `json:"budgetRange"`
	PreferredMode *string `json:"preferredMode"`
}

// List handles GET /api/v1/admin/leads
func (h *LeadHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	status := c.Query("status", "")
	search := c.Query("search", "")

	query := h.db.Model(&model.Lead{})

	if status != "" {
		if !model.ValidLeadStatus(status) {
			return response.BadRequest(c, "Invalid lead status filter")
		}
		query = query.Where("status = ?", status)
	}

	if search != "" {
		query = query.Where("full_name ILIKE ? OR email ILIKE ? OR phone LIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count leads")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var leads []model.Lead
	if err := query.Preload("Interests").
		Order("created_at DESC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&leads).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch leads")
	}

	return response.Paginated(c, leads, pagination)
}

// Get handles GET /api/v1/admin/leads/:id
func (h *LeadHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid lead id")
	}

	var lead model.Lead
	if err := h.db.Preload("Interests.Program").First(&lead, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Lead not found")
		}
		return response.InternalServerError(c, "Failed to fetch lead")
	}

	return response.Success(c, lead)
}

// Create handles POST /api/v1/admin/leads — manual entry by a counsellor
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var input services.LeadInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.Source == "" {
		input.Source = "admin"
	}

	lead, err := h.leadService.Create(c.Context(), input)
	if err != nil {
		if vf, ok := err.(*services.ValidationFailure); ok {
			return response.MissingFields(c, vf.MissingFields)
		}
		return response.InternalServerError(c, "Failed to create lead")
	}

	return response.Created(c, lead)
}

// Update handles PATCH /api/v1/admin/leads/:id
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid lead id")
	}

	var req UpdateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = validation.SanitizeString(*req.FullName)
	}
	if req.Email != nil {
		updates["email"] = validation.SanitizeString(*req.Email)
	}
	if req.Phone != nil {
		phone := validation.NormalizePhone(*req.Phone)
		if phone == "" {
			return response.BadRequest(c, "Invalid phone number")
		}
		updates["phone"] = phone
	}
	if req.Status != nil {
		if !model.ValidLeadStatus(*req.Status) {
			return response.BadRequest(c, "Invalid lead status")
		}
		updates["status"] = *req.Status
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.State != nil {
		updates["state"] = validation.SanitizeString(*req.State)
	}
	if req.City != nil {
		updates["city"] = validation.SanitizeString(*req.City)
	}
	if req.BudgetRange != nil {
		updates["budget_range"] = validation.SanitizeString(*req.BudgetRange)
	}
	if req.PreferredMode != nil {
		updates["preferred_mode"] = validation.SanitizeString(*req.PreferredMode)
	}

	if len(updates) == 0 {
		return response.BadRequest(c, "No fields to update")
	}

	var lead model.Lead
	if err := h.db.First(&lead, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Lead not found")
		}
		return response.InternalServerError(c, "Failed to fetch lead")
	}

	if err := h.db.Model(&lead).Updates(updates).Error; err != nil {
		return response.InternalServerError(c, "Failed to update lead")
	}

	return response.Success(c, lead)
}

// Delete handles DELETE /api/v1/admin/leads/:id
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid lead id")
	}

	// Hard delete so interest rows go with the lead
	result := h.db.Unscoped().Delete(&model.Lead{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete lead")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Lead not found")
	}

	return response.Success(c, fiber.Map{"success": true})
}
