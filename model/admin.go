package model

import (
	"time"

	"gorm.io/gorm"
)

// AdminUser represents a dashboard operator account
type AdminUser struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Role         string         `gorm:"type:varchar(20);default:'admin'" json:"role"` // admin, counsellor
	LastLoginAt  *time.Time     `json:"last_login_at,omitempty"`
	TokenVersion int            `gorm:"default:0" json:"-"` // Increment to invalidate all tokens

	// Relationships
	TokenBlacklist []AdminTokenBlacklist `gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE" json:"-"`
}

// AdminTokenBlacklist stores revoked admin session tokens by JTI
type AdminTokenBlacklist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Token     string         `gorm:"uniqueIndex;not null;type:text" json:"token"`
	AdminID   uint           `gorm:"index" json:"admin_id"`
	Reason    string         `gorm:"type:varchar(100)" json:"reason"` // logout, security, manual_revoke
	ExpiresAt time.Time      `gorm:"index;not null" json:"expires_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Admin AdminUser `gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE" json:"admin,omitempty"`
}

// TableName specifies the table name for AdminTokenBlacklist
func (AdminTokenBlacklist) TableName() string {
	return "admin_token_blacklist"
}
