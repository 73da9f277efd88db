package institution

import (
	"github.com/edumitra/edumitra-api/services"
	"github.com/edumitra/edumitra-api/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// InstitutionHandler handles public institution views
type InstitutionHandler struct {
	db             *gorm.DB
	catalogService *services.CatalogService
}

// NewInstitutionHandler creates a new institution handler
func NewInstitutionHandler(db *gorm.DB, catalogService *services.CatalogService) *InstitutionHandler {
	return &InstitutionHandler{
		db:             db,
		catalogService: catalogService,
	}
}

// List handles GET /api/v1/institutions
func (h *InstitutionHandler) List(c *fiber.Ctx) error {
	institutions, err := h.catalogService.ListInstitutions(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch institutions")
	}

	return response.Success(c, institutions)
}

// Get handles GET /api/v1/institutions/:slug
func (h *InstitutionHandler) Get(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return response.BadRequest(c, "Missing institution slug")
	}

	institution, err := h.catalogService.GetInstitutionBySlug(c.Context(), slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Institution not found")
		}
		return response.InternalServerError(c, "Failed to fetch institution")
	}

	return response.Success(c, institution)
}
