package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/edumitra/edumitra-api/model"
	"github.com/edumitra/edumitra-api/utils/validation"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LeadInput is the raw lead payload from the wizard or quick-connect form
type LeadInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`

	Gender               string `json:"gender"`
	DOB                  string `json:"dob"`
	State                string `json:"state"`
	City                 string `json:"city"`
	EmploymentStatus     string `json:"employmentStatus"`
	SalaryBand           string `json:"salaryBand"`
	HighestQualification string `json:"highestQualification"`
	LastScorePercent     string `json:"lastScorePercent"`

	DegreeInterest         string `json:"degreeInterest"`
	CoursePreference       string `json:"coursePreference"`
	SpecialisationInterest string `json:"specialisationInterest"`
	Goal                   string `json:"goal"`
	BudgetRange            string `json:"budgetRange"`
	WantsEMI               bool   `json:"wantsEMI"`
	Category               string `json:"category"`
	ExperienceYears        string `json:"experienceYears"`
	PreferredMode          string `json:"preferredMode"`

	Source       string            `json:"source"`
	Campaign     string            `json:"campaign"`
	CampaignMeta map[string]string `json:"campaignMeta"`

	SelectedPrograms []int64 `json:"selectedPrograms"`
	Consent          bool    `json:"consent"`
}

// ValidationFailure reports which required fields were missing; the intake
// call has no side effects when it is returned.
type ValidationFailure struct {
	MissingFields []string
}

func (e *ValidationFailure) Error() string {
	return "missing required fields: " + strings.Join(e.MissingFields, ", ")
}

// LeadService normalizes, validates, and persists lead submissions
type LeadService struct {
	db *gorm.DB
}

// NewLeadService creates a new lead service
func NewLeadService(db *gorm.DB) *LeadService {
	return &LeadService{db: db}
}

// ValidateAndNormalize checks the required contact triplet and normalizes
// the payload in place. On failure it returns a ValidationFailure listing
// exactly the missing JSON field names.
func ValidateAndNormalize(input *LeadInput) error {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = validation.NormalizePhone(input.Phone)

	missing := []string{}
	if input.FullName == "" {
		missing = append(missing, "fullName")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if input.Phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return &ValidationFailure{MissingFields: missing}
	}

	input.LastScorePercent = validation.CoerceNumericString(input.LastScorePercent)
	input.ExperienceYears = validation.CoerceNumericString(input.ExperienceYears)

	if strings.TrimSpace(input.Source) == "" {
		input.Source = "website"
	}

	return nil
}

// SanitizeProgramIDs keeps only positive ids, deduplicated in first-seen order
func SanitizeProgramIDs(ids []int64) []uint {
	seen := map[int64]bool{}
	out := []uint{}
	for _, id := range ids {
		if id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, uint(id))
	}
	return out
}

// Create validates the input, inserts exactly one lead row, then attaches
// interest links for the selected programs. The lead insert is the
// transactional unit: interest-link failures are logged and ignored.
func (s *LeadService) Create(ctx context.Context, input LeadInput) (*model.Lead, error) {
	if err := ValidateAndNormalize(&input); err != nil {
		return nil, err
	}

	lead := model.Lead{
		FullName:             input.FullName,
		Email:                input.Email,
		Phone:                input.Phone,
		Gender:               input.Gender,
		DOB:                  input.DOB,
		State:                input.State,
		City:                 input.City,
		EmploymentStatus:     input.EmploymentStatus,
		SalaryBand:           input.SalaryBand,
		HighestQualification: input.HighestQualification,
		LastScorePercent:     input.LastScorePercent,

		DegreeInterest:         input.DegreeInterest,
		CoursePreference:       input.CoursePreference,
		SpecialisationInterest: input.SpecialisationInterest,
		Goal:                   input.Goal,
		BudgetRange:            input.BudgetRange,
		WantsEMI:               input.WantsEMI,
		Category:               input.Category,
		ExperienceYears:        input.ExperienceYears,
		PreferredMode:          input.PreferredMode,

		Source:   input.Source,
		Campaign: input.Campaign,
		Status:   model.LeadStatusNew,
	}

	if len(input.CampaignMeta) > 0 {
		metaJSON, err := json.Marshal(input.CampaignMeta)
		if err == nil {
			lead.CampaignMeta = datatypes.JSON(metaJSON)
		}
	}

	if input.Consent {
		now := time.Now()
		lead.ConsentedAt = &now
	}

	if err := s.db.WithContext(ctx).Create(&lead).Error; err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	s.attachInterests(ctx, lead.ID, SanitizeProgramIDs(input.SelectedPrograms))

	return &lead, nil
}

// attachInterests inserts one bridge row per program id. Duplicate
// (lead, program) pairs are ignored through ON CONFLICT DO NOTHING, and any
// other failure only costs that one link.
func (s *LeadService) attachInterests(ctx context.Context, leadID uint, programIDs []uint) {
	for _, programID := range programIDs {
		interest := model.LeadProgramInterest{
			LeadID:    leadID,
			ProgramID: programID,
		}
		err := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "lead_id"}, {Name: "program_id"}},
				DoNothing: true,
			}).
			Create(&interest).Error
		if err != nil {
			log.Printf("Failed to attach program interest lead=%d program=%d: %v", leadID, programID, err)
		}
	}
}
