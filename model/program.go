package model

import (
	"time"

	"gorm.io/gorm"
)

// DeliveryMode is the instruction format of a program
type DeliveryMode string

const (
	DeliveryModeOnline   DeliveryMode = "online"
	DeliveryModeBlended  DeliveryMode = "blended"
	DeliveryModeWeekend  DeliveryMode = "weekend"
	DeliveryModeOnCampus DeliveryMode = "on-campus"
)

// ValidDeliveryMode reports whether mode is one of the enumerated delivery modes
func ValidDeliveryMode(mode string) bool {
	switch DeliveryMode(mode) {
	case DeliveryModeOnline, DeliveryModeBlended, DeliveryModeWeekend, DeliveryModeOnCampus:
		return true
	}
	return false
}

// Program represents a degree offering (e.g., "Online MBA in Finance") owned by one institution
type Program struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	InstitutionID  uint           `gorm:"not null;index;uniqueIndex:idx_programs_institution_title" json:"institution_id"`
	DegreeType     string         `gorm:"not null;type:varchar(100)" json:"degree_type"` // e.g., "MBA", "MCA"
	Title          string         `gorm:"not null;uniqueIndex:idx_programs_institution_title" json:"title"`
	DurationMonths int            `gorm:"default:24" json:"duration_months"`
	DeliveryMode   DeliveryMode   `gorm:"type:varchar(20);default:'online'" json:"delivery_mode"`
	TotalFee       int64          `json:"total_fee"` // INR
	ApplicationFee int64          `json:"application_fee"`
	EMIAvailable   bool           `gorm:"default:false" json:"emi_available"`
	Highlights     string         `gorm:"type:text" json:"highlights"`
	Outcomes       string         `gorm:"type:text" json:"outcomes"`
	Eligibility    string         `gorm:"type:text" json:"eligibility"`
	Curriculum     string         `gorm:"type:text" json:"curriculum"`
	MinExperience  int            `gorm:"default:0" json:"min_experience"` // years
	Featured       bool           `gorm:"default:false;index" json:"featured"`
	BrochureURL    string         `gorm:"type:varchar(512)" json:"brochure_url"`
	HeroImageURL   string         `gorm:"type:varchar(512)" json:"hero_image_url"`
	ApplyURL       string         `gorm:"type:varchar(512)" json:"apply_url"`
	Deadline       *time.Time     `json:"deadline,omitempty"` // application deadline

	// Relationships
	Institution Institution           `gorm:"foreignKey:InstitutionID;constraint:OnDelete:CASCADE" json:"institution,omitempty"`
	Fees        []ProgramFee          `gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE" json:"fees,omitempty"`
	FAQs        []ProgramFAQ          `gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE" json:"faqs,omitempty"`
	Assets      []ProgramAsset        `gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE" json:"assets,omitempty"`
	Interests   []LeadProgramInterest `gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE" json:"-"`
}

// ProgramFee is one line of a program's fee breakdown (e.g., per-semester)
type ProgramFee struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ProgramID uint      `gorm:"not null;index" json:"program_id"`
	Label     string    `gorm:"not null;type:varchar(100)" json:"label"` // e.g., "Semester 1"
	Amount    int64     `gorm:"not null" json:"amount"`
	Note      string    `gorm:"type:varchar(255)" json:"note"`
}

// ProgramFAQ is a question/answer pair shown on a program detail page
type ProgramFAQ struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ProgramID uint      `gorm:"not null;index" json:"program_id"`
	Question  string    `gorm:"not null;type:text" json:"question"`
	Answer    string    `gorm:"not null;type:text" json:"answer"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
}

// ProgramAsset is an uploaded file (brochure, hero image) attached to a program
type ProgramAsset struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ProgramID uint      `gorm:"not null;index" json:"program_id"`
	Kind      string    `gorm:"not null;type:varchar(20)" json:"kind"` // brochure, hero, logo
	FileName  string    `gorm:"not null;type:varchar(255)" json:"file_name"`
	URL       string    `gorm:"not null;type:varchar(512)" json:"url"`
	SizeBytes int64     `json:"size_bytes"`
}
