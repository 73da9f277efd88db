package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/edumitra/edumitra-api/model"
	"gorm.io/gorm"
)

// CatalogFilters narrows public and admin program listings
type CatalogFilters struct {
	InstitutionID uint   // 0 means no filter
	TitleQuery    string // substring match on title
	DegreeType    string // substring match on degree type
	DeliveryMode  string // exact match
	EMIAvailable  *bool  // exact match when set
}

// CatalogService exposes read-only views of programs joined with their
// owning institution. It never mutates catalog state.
type CatalogService struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewCatalogService creates a new catalog service. The rand source drives
// featured-list sampling; tests pass a fixed seed.
func NewCatalogService(db *gorm.DB, rng *rand.Rand) *CatalogService {
	return &CatalogService{db: db, rng: rng}
}

// ListPrograms returns programs matching the filters, newest first
func (s *CatalogService) ListPrograms(ctx context.Context, filters CatalogFilters) ([]model.Program, error) {
	query := s.db.WithContext(ctx).
		Model(&model.Program{}).
		Preload("Institution")

	if filters.InstitutionID > 0 {
		query = query.Where("institution_id = ?", filters.InstitutionID)
	}
	if q := strings.TrimSpace(filters.TitleQuery); q != "" {
		query = query.Where("title ILIKE ?", "%"+q+"%")
	}
	if q := strings.TrimSpace(filters.DegreeType); q != "" {
		query = query.Where("degree_type ILIKE ?", "%"+q+"%")
	}
	if filters.DeliveryMode != "" {
		query = query.Where("delivery_mode = ?", filters.DeliveryMode)
	}
	if filters.EMIAvailable != nil {
		query = query.Where("emi_available = ?", *filters.EMIAvailable)
	}

	var programs []model.Program
	if err := query.Order("created_at DESC, id DESC").Find(&programs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch programs: %w", err)
	}

	return programs, nil
}

// GetProgram returns one program with institution, fee rows, and FAQs
func (s *CatalogService) GetProgram(ctx context.Context, id uint) (*model.Program, error) {
	var program model.Program
	err := s.db.WithContext(ctx).
		Preload("Institution").
		Preload("Fees").
		Preload("FAQs").
		First(&program, id).Error
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// FeaturedPrograms returns up to limit programs for the home page. Programs
// flagged featured are preferred; when none exist the newest programs are
// used instead. With more candidates than slots the result is a random
// sample so repeat visitors don't always see the same cards.
func (s *CatalogService) FeaturedPrograms(ctx context.Context, limit int) ([]model.Program, error) {
	if limit <= 0 {
		limit = TopMatches
	}

	var candidates []model.Program
	err := s.db.WithContext(ctx).
		Preload("Institution").
		Where("featured = ?", true).
		Order("created_at DESC, id DESC").
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch featured programs: %w", err)
	}

	if len(candidates) == 0 {
		err = s.db.WithContext(ctx).
			Preload("Institution").
			Order("created_at DESC, id DESC").
			Limit(limit).
			Find(&candidates).Error
		if err != nil {
			return nil, fmt.Errorf("failed to fetch featured programs: %w", err)
		}
		return candidates, nil
	}

	return SamplePrograms(s.rng, candidates, limit), nil
}

// ListInstitutions returns all institutions, newest first
func (s *CatalogService) ListInstitutions(ctx context.Context) ([]model.Institution, error) {
	var institutions []model.Institution
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&institutions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch institutions: %w", err)
	}
	return institutions, nil
}

// GetInstitutionBySlug returns one institution with its programs
func (s *CatalogService) GetInstitutionBySlug(ctx context.Context, slug string) (*model.Institution, error) {
	var institution model.Institution
	err := s.db.WithContext(ctx).
		Preload("Programs").
		Where("slug = ?", slug).
		First(&institution).Error
	if err != nil {
		return nil, err
	}
	return &institution, nil
}

// SamplePrograms returns up to limit programs drawn without replacement
// using the given source. The input slice is not modified.
func SamplePrograms(rng *rand.Rand, programs []model.Program, limit int) []model.Program {
	if len(programs) <= limit {
		return programs
	}

	picked := make([]model.Program, len(programs))
	copy(picked, programs)
	rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})

	return picked[:limit]
}
