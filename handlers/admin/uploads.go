package admin

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/edumitra/edumitra-api/model"
	"github.com/edumitra/edumitra-api/services/storage"
	"github.com/edumitra/edumitra-api/utils/pdfvalidation"
	"github.com/edumitra/edumitra-api/utils/response"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var allowedImageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// UploadHandler stores brochures and images on Spaces and optionally
// records them against a program
type UploadHandler struct {
	db     *gorm.DB
	spaces *storage.SpacesClient
}

// NewUploadHandler creates a new upload handler. spaces may be nil when
// object storage is not configured.
func NewUploadHandler(db *gorm.DB, spaces *storage.SpacesClient) *UploadHandler {
	return &UploadHandler{db: db, spaces: spaces}
}

// UploadResult is returned after a successful upload
type UploadResult struct {
	URL       string `json:"url"`
	Key       string `json:"key"`
	FileName  string `json:"fileName"`
	SizeBytes int64  `json:"sizeBytes"`
	Kind      string `json:"kind"`
	PageCount int    `json:"pageCount,omitempty"`
}

// Upload handles POST /api/v1/admin/uploads. Accepts multipart form with
// a "file" part, a "kind" field (brochure, hero, logo) and an optional
// "programId" to attach the asset to a program.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	if h.spaces == nil {
		return response.ServiceUnavailable(c, "File storage is not configured")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return response.MissingFields(c, []string{"file"})
	}

	kind := strings.ToLower(strings.TrimSpace(c.FormValue("kind", "brochure")))
	switch kind {
	case "brochure", "hero", "logo":
	default:
		return response.BadRequest(c, "kind must be one of: brochure, hero, logo")
	}

	var programID uint
	if raw := c.FormValue("programId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return response.BadRequest(c, "Invalid programId")
		}
		var program model.Program
		if err := h.db.First(&program, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return response.NotFound(c, "Program not found")
			}
			return response.InternalServerError(c, "Failed to fetch program")
		}
		programID = program.ID
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	var contentType string
	var pageCount int

	if kind == "brochure" {
		result, err := pdfvalidation.ValidatePDFFile(file, pdfvalidation.BrochureLimits)
		if err != nil {
			return response.InternalServerError(c, "Failed to read uploaded file")
		}
		if !result.Valid {
			return response.BadRequest(c, result.Error)
		}
		contentType = "application/pdf"
		pageCount = result.PageCount
	} else {
		ct, ok := allowedImageTypes[ext]
		if !ok {
			return response.BadRequest(c, "Only JPEG, PNG and WebP images are supported")
		}
		contentType = ct
	}

	src, err := file.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}

	key := fmt.Sprintf("%ss/%s%s", kind, uuid.NewString(), ext)
	url, err := h.spaces.UploadBytes(c.Context(), key, data, contentType)
	if err != nil {
		return response.InternalServerError(c, "Failed to upload file")
	}

	if programID != 0 {
		asset := model.ProgramAsset{
			ProgramID: programID,
			Kind:      kind,
			FileName:  file.Filename,
			URL:       url,
			SizeBytes: file.Size,
		}
		if err := h.db.Create(&asset).Error; err != nil {
			// the file is already on Spaces; clean it up so we don't
			// leave an orphan object behind
			_ = h.spaces.DeleteFile(c.Context(), key)
			return response.InternalServerError(c, "Failed to record uploaded asset")
		}
	}

	return response.Created(c, UploadResult{
		URL:       url,
		Key:       key,
		FileName:  file.Filename,
		SizeBytes: file.Size,
		Kind:      kind,
		PageCount: pageCount,
	})
}

// DeleteAsset handles DELETE /api/v1/admin/uploads/:id — removes a
// recorded program asset and its backing object
func (h *UploadHandler) DeleteAsset(c *fiber.Ctx) error {
	if h.spaces == nil {
		return response.ServiceUnavailable(c, "File storage is not configured")
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid asset id")
	}

	var asset model.ProgramAsset
	if err := h.db.First(&asset, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Asset not found")
		}
		return response.InternalServerError(c, "Failed to fetch asset")
	}

	if key := storage.KeyFromURL(asset.URL); key != "" {
		_ = h.spaces.DeleteFile(c.Context(), key)
	}

	if err := h.db.Delete(&asset).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete asset")
	}

	return response.Success(c, fiber.Map{"success": true})
}
