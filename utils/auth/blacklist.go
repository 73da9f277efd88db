package auth

import (
	"context"
	"time"

	"github.com/edumitra/edumitra-api/model"
	"gorm.io/gorm"
)

// BlacklistService handles admin token revocation
type BlacklistService struct {
	db *gorm.DB
}

// NewBlacklistService creates a new blacklist service
func NewBlacklistService(db *gorm.DB) *BlacklistService {
	return &BlacklistService{db: db}
}

// RevokeToken adds a token JTI to the blacklist
func (s *BlacklistService) RevokeToken(ctx context.Context, jti string, adminID uint, expiresAt time.Time, reason string) error {
	entry := model.AdminTokenBlacklist{
		Token:     jti,
		AdminID:   adminID,
		Reason:    reason,
		ExpiresAt: expiresAt,
	}

	return s.db.WithContext(ctx).Create(&entry).Error
}

// IsTokenRevoked checks if a token JTI is in the blacklist
func (s *BlacklistService) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.AdminTokenBlacklist{}).
		Where("token = ? AND expires_at > ?", jti, time.Now()).
		Count(&count).
		Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// RevokeAllAdminTokens increments the admin's token version to invalidate all tokens
func (s *BlacklistService) RevokeAllAdminTokens(ctx context.Context, adminID uint) error {
	return s.db.WithContext(ctx).
		Model(&model.AdminUser{}).
		Where("id = ?", adminID).
		UpdateColumn("token_version", gorm.Expr("token_version + ?", 1)).
		Error
}

// CleanupExpiredTokens removes expired entries from the blacklist
func (s *BlacklistService) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Unscoped().
		Where("expires_at < ?", time.Now()).
		Delete(&model.AdminTokenBlacklist{})
	return res.RowsAffected, res.Error
}
