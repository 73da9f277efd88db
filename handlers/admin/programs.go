package admin

import (
	"errors"
	"strconv"
	"time"

	"github.com/edumitra/edumitra-api/model"
	"github.com/edumitra/edumitra-api/utils/response"
	"github.com/edumitra/edumitra-api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProgramHandler handles admin program management
type ProgramHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewProgramHandler creates a new admin program handler
func NewProgramHandler(db *gorm.DB) *ProgramHandler {
	return &ProgramHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateProgramRequest represents the request body for creating a program
type CreateProgramRequest struct {
	InstitutionID  uint   `json:"institutionId"`
	DegreeType     string `json:"degreeType"`
	Title          string `json:"title"`
	DurationMonths int    `json:"durationMonths" validate:"omitempty,gte=1,lte=72"`
	DeliveryMode   string `json:"deliveryMode"`
	TotalFee       int64  `json:"totalFee" validate:"omitempty,gte=0"`
	ApplicationFee int64  `json:"applicationFee" validate:"omitempty,gte=0"`
	EMIAvailable   bool   `json:"emiAvailable"`
	Highlights     string `json:"highlights"`
	Outcomes       string `json:"outcomes"`
	Eligibility    string `json:"eligibility"`
	Curriculum     string `json:"curriculum"`
	MinExperience  int    `json:"minExperience" validate:"omitempty,gte=0,lte=50"`
	Featured       bool   `json:"featured"`
	BrochureURL    string `json:"brochureUrl" validate:"omitempty,url,max=512"`
	HeroImageURL   string `json:"heroImageUrl" validate:"omitempty,url,max=512"`
	ApplyURL       string `json:"applyUrl" validate:"omitempty,url,max=512"`
	Deadline       string `json:"deadline"` // RFC 3339 date
}

// UpdateProgramRequest is the partial field set accepted by PATCH
type UpdateProgramRequest struct {
	DegreeType     *string `json:"degreeType"`
	Title          *string `json:"title"`
	DurationMonths *int    `json:"durationMonths"`
	DeliveryMode   *string `json:"deliveryMode"`
	TotalFee       *int64  `json:"totalFee"`
	ApplicationFee *int64  `json:"applicationFee"`
	EMIAvailable   *bool   `json:"emiAvailable"`
	Highlights     *string `json:"highlights"`
	Outcomes       *string `json:"outcomes"`
	Eligibility    *string `json:"eligibility"`
	Curriculum     *string `json:"curriculum"`
	MinExperience  *int    `json:"minExperience"`
	Featured       *bool   `json:"featured"`
	BrochureURL    *string `json:"brochureUrl"`
	HeroImageURL   *string `json:"heroImageUrl"`
	ApplyURL       *string `json:"applyUrl"`
}

// List handles GET /api/v1/admin/programs
func (h *ProgramHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	search := c.Query("search", "")

	query := h.db.Model(&model.Program{})

	if search != "" {
		query = query.Where("title ILIKE ? OR degree_type ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if institutionID, err := strconv.Atoi(c.Query("institution_id", "0")); err == nil && institutionID > 0 {
		query = query.Where("institution_id = ?", institutionID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count programs")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var programs []model.Program
	if err := query.Preload("Institution").
		Order("created_at DESC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&programs).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch programs")
	}

	return response.Paginated(c, programs, pagination)
}

// Get handles GET /api/v1/admin/programs/:id
func (h *ProgramHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid program id")
	}

	var program model.Program
	if err := h.db.Preload("Institution").Preload("Fees").Preload("FAQs").Preload("Assets").
		First(&program, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Program not found")
		}
		return response.InternalServerError(c, "Failed to fetch program")
	}

	return response.Success(c, program)
}

// Create handles POST /api/v1/admin/programs
func (h *ProgramHandler) Create(c *fiber.Ctx) error {
	var req CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.DegreeType = validation.SanitizeString(req.DegreeType)
	req.Title = validation.SanitizeString(req.Title)

	missing := []string{}
	if req.InstitutionID == 0 {
		missing = append(missing, "institutionId")
	}
	if req.DegreeType == "" {
		missing = append(missing, "degreeType")
	}
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if len(missing) > 0 {
		return response.MissingFields(c, missing)
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if req.DeliveryMode == "" {
		req.DeliveryMode = string(model.DeliveryModeOnline)
	}
	if !model.ValidDeliveryMode(req.DeliveryMode) {
		return response.BadRequest(c, "Invalid delivery mode")
	}

	var institution model.Institution
	if err := h.db.First(&institution, req.InstitutionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.BadRequest(c, "Institution does not exist")
		}
		return response.InternalServerError(c, "Failed to verify institution")
	}

	// (institution, title) pairs are unique
	var existing model.Program
	err := h.db.Where("institution_id = ? AND title = ?", req.InstitutionID, req.Title).
		First(&existing).Error
	if err == nil {
		return response.Conflict(c, "A program with this title already exists for this institution")
	}

	program := model.Program{
		InstitutionID:  req.InstitutionID,
		DegreeType:     req.DegreeType,
		Title:          req.Title,
		DurationMonths: req.DurationMonths,
		DeliveryMode:   model.DeliveryMode(req.DeliveryMode),
		TotalFee:       req.TotalFee,
		ApplicationFee: req.ApplicationFee,
		EMIAvailable:   req.EMIAvailable,
		Highlights:     req.Highlights,
		Outcomes:       req.Outcomes,
		Eligibility:    req.Eligibility,
		Curriculum:     req.Curriculum,
		MinExperience:  req.MinExperience,
		Featured:       req.Featured,
		BrochureURL:    req.BrochureURL,
		HeroImageURL:   req.HeroImageURL,
		ApplyURL:       req.ApplyURL,
	}

	if req.Deadline != "" {
		deadline, err := time.Parse(time.RFC3339, req.Deadline)
		if err != nil {
			return response.BadRequest(c, "Invalid deadline, expected RFC 3339 timestamp")
		}
		program.Deadline = &deadline
	}

	if err := h.db.Create(&program).Error; err != nil {
		// The pre-check races with concurrent creates; the unique index is authoritative
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.Conflict(c, "A program with this title already exists for this institution")
		}
		return response.InternalServerError(c, "Failed to create program")
	}

	// Return the joined row the dashboard renders
	h.db.Preload("Institution").First(&program, program.ID)

	return response.Created(c, program)
}

// Update handles PATCH /api/v1/admin/programs/:id
func (h *ProgramHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid program id")
	}

	var req UpdateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.DegreeType != nil {
		updates["degree_type"] = validation.SanitizeString(*req.DegreeType)
	}
	if req.Title != nil {
		updates["title"] = validation.SanitizeString(*req.Title)
	}
	if req.DurationMonths != nil {
		updates["duration_months"] = *req.DurationMonths
	}
	if req.DeliveryMode != nil {
		if !model.ValidDeliveryMode(*req.DeliveryMode) {
			return response.BadRequest(c, "Invalid delivery mode")
		}
		updates["delivery_mode"] = *req.DeliveryMode
	}
	if req.TotalFee != nil {
		updates["total_fee"] = *req.TotalFee
	}
	if req.ApplicationFee != nil {
		updates["application_fee"] = *req.ApplicationFee
	}
	if req.EMIAvailable != nil {
		updates["emi_available"] = *req.EMIAvailable
	}
	if req.Highlights != nil {
		updates["highlights"] = *req.Highlights
	}
	if req.Outcomes != nil {
		updates["outcomes"] = *req.Outcomes
	}
	if req.Eligibility != nil {
		updates["eligibility"] = *req.Eligibility
	}
	if req.Curriculum != nil {
		updates["curriculum"] = *req.Curriculum
	}
	if req.MinExperience != nil {
		updates["min_experience"] = *req.MinExperience
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.BrochureURL != nil {
		updates["brochure_url"] = *req.BrochureURL
	}
	if req.HeroImageURL != nil {
		updates["hero_image_url"] = *req.HeroImageURL
	}
	if req.ApplyURL != nil {
		updates["apply_url"] = *req.ApplyURL
	}

	if len(updates) == 0 {
		return response.BadRequest(c, "No fields to update")
	}

	var program model.Program
	if err := h.db.First(&program, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Program not found")
		}
		return response.InternalServerError(c, "Failed to fetch program")
	}

	if err := h.db.Model(&program).Updates(updates).Error; err != nil {
		return response.InternalServerError(c, "Failed to update program")
	}

	h.db.Preload("Institution").First(&program, program.ID)

	return response.Success(c, program)
}

// Delete handles DELETE /api/v1/admin/programs/:id. Fee, FAQ, asset, and
// interest rows cascade with the program.
func (h *ProgramHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid program id")
	}

	// Hard delete so the ON DELETE CASCADE constraints remove child rows
	result := h.db.Unscoped().Delete(&model.Program{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete program")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Program not found")
	}

	return response.Success(c, fiber.Map{"success": true})
}
