package services

import (
	"context"
	"fmt"
	"time"

	"github.com/edumitra/edumitra-api/model"
	"gorm.io/gorm"
)

// AnalyticsService handles dashboard reporting
type AnalyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// DashboardStats represents the admin dashboard summary
type DashboardStats struct {
	TotalLeads        int64 `json:"total_leads"`
	NewLeads          int64 `json:"new_leads"`
	ContactedLeads    int64 `json:"contacted_leads"`
	QualifiedLeads    int64 `json:"qualified_leads"`
	ConvertedLeads    int64 `json:"converted_leads"`
	LeadsToday        int64 `json:"leads_today"`
	LeadsThisWeek     int64 `json:"leads_this_week"`
	TotalInstitutions int64 `json:"total_institutions"`
	TotalPrograms     int64 `json:"total_programs"`
	FeaturedPrograms  int64 `json:"featured_programs"`
	InterestLinks     int64 `json:"interest_links"`
}

// GetDashboardStats retrieves the lead funnel and catalog counts
func (s *AnalyticsService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	db := s.db.WithContext(ctx)

	if err := db.Model(&model.Lead{}).Count(&stats.TotalLeads).Error; err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	statusCounts := []struct {
		Status model.LeadStatus
		Count  int64
	}{}
	err := db.Model(&model.Lead{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&statusCounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count leads by status: %w", err)
	}
	for _, row := range statusCounts {
		switch row.Status {
		case model.LeadStatusNew:
			stats.NewLeads = row.Count
		case model.LeadStatusContacted:
			stats.ContactedLeads = row.Count
		case model.LeadStatusQualified:
			stats.QualifiedLeads = row.Count
		case model.LeadStatusConverted:
			stats.ConvertedLeads = row.Count
		}
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := db.Model(&model.Lead{}).Where("created_at >= ?", startOfDay).Count(&stats.LeadsToday).Error; err != nil {
		return nil, fmt.Errorf("failed to count today's leads: %w", err)
	}

	weekAgo := now.AddDate(0, 0, -7)
	if err := db.Model(&model.Lead{}).Where("created_at >= ?", weekAgo).Count(&stats.LeadsThisWeek).Error; err != nil {
		return nil, fmt.Errorf("failed to count this week's leads: %w", err)
	}

	if err := db.Model(&model.Institution{}).Count(&stats.TotalInstitutions).Error; err != nil {
		return nil, fmt.Errorf("failed to count institutions: %w", err)
	}

	if err := db.Model(&model.Program{}).Count(&stats.TotalPrograms).Error; err != nil {
		return nil, fmt.Errorf("failed to count programs: %w", err)
	}

	if err := db.Model(&model.Program{}).Where("featured = ?", true).Count(&stats.FeaturedPrograms).Error; err != nil {
		return nil, fmt.Errorf("failed to count featured programs: %w", err)
	}

	if err := db.Model(&model.LeadProgramInterest{}).Count(&stats.InterestLinks).Error; err != nil {
		return nil, fmt.Errorf("failed to count interest links: %w", err)
	}

	return stats, nil
}
