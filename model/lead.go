package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LeadStatus tracks where a lead sits in the counselling funnel
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
)

// ValidLeadStatus reports whether status is one of the enumerated lead statuses
func ValidLeadStatus(status string) bool {
	switch LeadStatus(status) {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusConverted:
		return true
	}
	return false
}

// Lead represents a prospective student's submitted contact and preference record
type Lead struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Required contact triplet
	FullName string `gorm:"not null" json:"full_name"`
	Email    string `gorm:"not null;index" json:"email"`
	Phone    string `gorm:"not null;type:varchar(15)" json:"phone"` // digits only

	// Optional demographics
	Gender               string `gorm:"type:varchar(20)" json:"gender"`
	DOB                  string `gorm:"type:varchar(20)" json:"dob"`
	State                string `gorm:"type:varchar(100)" json:"state"`
	City                 string `gorm:"type:varchar(100)" json:"city"`
	EmploymentStatus     string `gorm:"type:varchar(50)" json:"employment_status"`
	SalaryBand           string `gorm:"type:varchar(50)" json:"salary_band"`
	HighestQualification string `gorm:"type:varchar(100)" json:"highest_qualification"`
	LastScorePercent     string `gorm:"type:varchar(10)" json:"last_score_percent"`

	// Preferences collected by the wizard
	DegreeInterest         string `gorm:"type:varchar(100)" json:"degree_interest"`
	CoursePreference       string `gorm:"type:varchar(100)" json:"course_preference"`
	SpecialisationInterest string `gorm:"type:varchar(100)" json:"specialisation_interest"`
	Goal                   string `gorm:"type:varchar(255)" json:"goal"`
	BudgetRange            string `gorm:"type:varchar(50)" json:"budget_range"`
	WantsEMI               bool   `gorm:"default:false" json:"wants_emi"`
	Category               string `gorm:"type:varchar(50)" json:"category"`
	ExperienceYears        string `gorm:"type:varchar(10)" json:"experience_years"`
	PreferredMode          string `gorm:"type:varchar(20)" json:"preferred_mode"`

	// Attribution
	Source       string         `gorm:"type:varchar(50);default:'website'" json:"source"`
	Campaign     string         `gorm:"type:varchar(100)" json:"campaign"`
	CampaignMeta datatypes.JSON `gorm:"type:jsonb" json:"campaign_meta,omitempty"` // utm params, referrer

	Status      LeadStatus `gorm:"type:varchar(20);default:'new';index" json:"status"`
	Notes       string     `gorm:"type:text" json:"notes"`
	ConsentedAt *time.Time `json:"consented_at,omitempty"`

	// Relationships
	Interests []LeadProgramInterest `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE" json:"interests,omitempty"`
}

// LeadProgramInterest links a lead to a program it expressed interest in.
// Unique per (lead_id, program_id); duplicate inserts are ignored.
type LeadProgramInterest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	LeadID    uint      `gorm:"not null;uniqueIndex:idx_lead_program" json:"lead_id"`
	ProgramID uint      `gorm:"not null;uniqueIndex:idx_lead_program" json:"program_id"`
	FitScore  *int      `json:"fit_score,omitempty"`
	Notes     string    `gorm:"type:varchar(255)" json:"notes"`

	// Relationships
	Lead    Lead    `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE" json:"-"`
	Program Program `gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE" json:"program,omitempty"`
}
