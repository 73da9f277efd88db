package admin

import (
	"errors"
	"strconv"

	"github.com/edumitra/edumitra-api/model"
	"github.com/edumitra/edumitra-api/services/webmeta"
	"github.com/edumitra/edumitra-api/utils/response"
	"github.com/edumitra/edumitra-api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// InstitutionHandler handles admin institution management
type InstitutionHandler struct {
	db          *gorm.DB
	validator   *validation.Validator
	metaFetcher *webmeta.Fetcher
}

// NewInstitutionHandler creates a new admin institution handler
func NewInstitutionHandler(db *gorm.DB, metaFetcher *webmeta.Fetcher) *InstitutionHandler {
	return &InstitutionHandler{
		db:          db,
		validator:   validation.NewValidator(),
		metaFetcher: metaFetcher,
	}
}

// CreateInstitutionRequest represents the request body for creating an institution
type CreateInstitutionRequest struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Location      string `json:"location" validate:"omitempty,max=255"`
	Accreditation string `json:"accreditation"`
	Website       string `json:"website" validate:"omitempty,url,max=255"`
	HeroImageURL  string `json:"heroImageUrl" validate:"omitempty,url,max=512"`
	LogoURL       string `json:"logoUrl" validate:"omitempty,url,max=512"`
	Established   int    `json:"established" validate:"omitempty,gte=1800,lte=2100"`
	Description   string `json:"description"`
}

// UpdateInstitutionRequest is the partial field set accepted by PATCH
type UpdateInstitutionRequest struct {
	Name          *string `json:"name"`
	Slug          *string `json:"slug"`
	Location      *string `json:"location"`
	Accreditation *string `json:"accreditation"`
	Website       *string `json:"website"`
	HeroImageURL  *string `json:"heroImageUrl"`
	LogoURL       *string `json:"logoUrl"`
	Established   *int    `json:"established"`
	Description   *string `json:"description"`
}

// PreviewRequest asks for website metadata before creating an institution
type PreviewRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// List handles GET /api/v1/admin/institutions
func (h *InstitutionHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	search := c.Query("search", "")

	query := h.db.Model(&model.Institution{})

	if search != "" {
		query = query.Where("name ILIKE ? OR slug ILIKE ? OR location ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count institutions")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	var institutions []model.Institution
	if err := query.Order("created_at DESC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(&institutions).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch institutions")
	}

	return response.Paginated(c, institutions, pagination)
}

// Get handles GET /api/v1/admin/institutions/:id
func (h *InstitutionHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid institution id")
	}

	var institution model.Institution
	if err := h.db.Preload("Programs").First(&institution, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Institution not found")
		}
		return response.InternalServerError(c, "Failed to fetch institution")
	}

	return response.Success(c, institution)
}

// Create handles POST /api/v1/admin/institutions
func (h *InstitutionHandler) Create(c *fiber.Ctx) error {
	var req CreateInstitutionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = validation.SanitizeString(req.Name)
	req.Slug = validation.SanitizeString(req.Slug)

	missing := []string{}
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Slug == "" {
		missing = append(missing, "slug")
	}
	if len(missing) > 0 {
		return response.MissingFields(c, missing)
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var existing model.Institution
	if err := h.db.Where("slug = ?", req.Slug).First(&existing).Error; err == nil {
		return response.Conflict(c, "Institution with this slug already exists")
	}

	institution := model.Institution{
		Name:          req.Name,
		Slug:          req.Slug,
		Location:      req.Location,
		Accreditation: req.Accreditation,
		Website:       req.Website,
		HeroImageURL:  req.HeroImageURL,
		LogoURL:       req.LogoURL,
		Established:   req.Established,
		Description:   req.Description,
	}

	if err := h.db.Create(&institution).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.Conflict(c, "Institution with this slug already exists")
		}
		return response.InternalServerError(c, "Failed to create institution")
	}

	return response.Created(c, institution)
}

// Update handles PATCH /api/v1/admin/institutions/:id
func (h *InstitutionHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid institution id")
	}

	var req UpdateInstitutionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = validation.SanitizeString(*req.Name)
	}
	if req.Slug != nil {
		updates["slug"] = validation.SanitizeString(*req.Slug)
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Accreditation != nil {
		updates["accreditation"] = *req.Accreditation
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.HeroImageURL != nil {
		updates["hero_image_url"] = *req.HeroImageURL
	}
	if req.LogoURL != nil {
		updates["logo_url"] = *req.LogoURL
	}
	if req.Established != nil {
		updates["established"] = *req.Established
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) == 0 {
		return response.BadRequest(c, "No fields to update")
	}

	var institution model.Institution
	if err := h.db.First(&institution, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Institution not found")
		}
		return response.InternalServerError(c, "Failed to fetch institution")
	}

	if err := h.db.Model(&institution).Updates(updates).Error; err != nil {
		return response.InternalServerError(c, "Failed to update institution")
	}

	return response.Success(c, institution)
}

// Delete handles DELETE /api/v1/admin/institutions/:id. The institution's
// programs (and their fee/FAQ/asset rows) cascade with it.
func (h *InstitutionHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid institution id")
	}

	// Hard delete so the ON DELETE CASCADE constraints remove child rows
	result := h.db.Unscoped().Delete(&model.Institution{}, id)
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete institution")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Institution not found")
	}

	return response.Success(c, fiber.Map{"success": true})
}

// Preview handles POST /api/v1/admin/institutions/preview — fetches
// title/description metadata from a partner website to prefill the form
func (h *InstitutionHandler) Preview(c *fiber.Ctx) error {
	var req PreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.URL == "" {
		return response.MissingFields(c, []string{"url"})
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	meta, err := h.metaFetcher.Fetch(c.Context(), req.URL)
	if err != nil {
		return response.BadRequest(c, "Could not fetch metadata from the given URL")
	}

	return response.Success(c, meta)
}
