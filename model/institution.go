package model

import (
	"time"

	"gorm.io/gorm"
)

// Institution represents a partner university or college offering programs
type Institution struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	Name          string         `gorm:"not null" json:"name"`
	Slug          string         `gorm:"uniqueIndex;not null" json:"slug"` // e.g., "manipal-online"
	Location      string         `gorm:"type:varchar(255)" json:"location"`
	Accreditation string         `gorm:"type:text" json:"accreditation"` // e.g., "NAAC A+, UGC-entitled"
	Website       string         `gorm:"type:varchar(255)" json:"website"`
	HeroImageURL  string         `gorm:"type:varchar(512)" json:"hero_image_url"`
	LogoURL       string         `gorm:"type:varchar(512)" json:"logo_url"`
	Established   int            `json:"established"`
	Description   string         `gorm:"type:text" json:"description"`

	// Relationships
	Programs []Program `gorm:"foreignKey:InstitutionID;constraint:OnDelete:CASCADE" json:"programs,omitempty"`
}
