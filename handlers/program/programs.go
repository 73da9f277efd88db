package program

import (
	"strconv"

	"github.com/edumitra/edumitra-api/services"
	"github.com/edumitra/edumitra-api/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProgramHandler handles public catalog views and program matching
type ProgramHandler struct {
	db             *gorm.DB
	catalogService *services.CatalogService
	matcherService *services.MatcherService
}

// NewProgramHandler creates a new program handler
func NewProgramHandler(db *gorm.DB, catalogService *services.CatalogService, matcherService *services.MatcherService) *ProgramHandler {
	return &ProgramHandler{
		db:             db,
		catalogService: catalogService,
		matcherService: matcherService,
	}
}

// List handles GET /api/v1/programs
func (h *ProgramHandler) List(c *fiber.Ctx) error {
	filters := services.CatalogFilters{
		TitleQuery:   c.Query("search", ""),
		DegreeType:   c.Query("degree_type", ""),
		DeliveryMode: c.Query("mode", ""),
	}

	if institutionID, err := strconv.Atoi(c.Query("institution_id", "0")); err == nil && institutionID > 0 {
		filters.InstitutionID = uint(institutionID)
	}

	if emi := c.Query("emi", ""); emi == "true" || emi == "false" {
		value := emi == "true"
		filters.EMIAvailable = &value
	}

	programs, err := h.catalogService.ListPrograms(c.Context(), filters)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch programs")
	}

	return response.Success(c, programs)
}

// Get handles GET /api/v1/programs/:id
func (h *ProgramHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid program id")
	}

	program, err := h.catalogService.GetProgram(c.Context(), uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Program not found")
		}
		return response.InternalServerError(c, "Failed to fetch program")
	}

	return response.Success(c, program)
}

// Featured handles GET /api/v1/programs/featured
func (h *ProgramHandler) Featured(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "6"))

	programs, err := h.catalogService.FeaturedPrograms(c.Context(), limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch featured programs")
	}

	return response.Success(c, programs)
}

// Match handles POST /api/v1/programs/match — the mid-wizard preview
func (h *ProgramHandler) Match(c *fiber.Ctx) error {
	var prefs services.MatchPreferences
	if err := c.BodyParser(&prefs); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	matches, err := h.matcherService.Match(c.Context(), prefs)
	if err != nil {
		return response.InternalServerError(c, "Unable to fetch recommendations")
	}

	return response.Success(c, fiber.Map{
		"programs": matches,
	})
}
