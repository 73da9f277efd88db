package cron

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/edumitra/edumitra-api/model"
	"github.com/edumitra/edumitra-api/utils/auth"
)

// staleLeadAge is how long a lead may sit in "new" before it gets flagged
const staleLeadAge = 14 * 24 * time.Hour

// CleanupTokenBlacklist removes expired admin token blacklist rows
func (m *CronManager) CleanupTokenBlacklist() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	jobName := "cleanup_token_blacklist"

	removed, err := auth.NewBlacklistService(m.db).CleanupExpiredTokens(ctx)
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to cleanup blacklist: %w", err))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Removed %d expired blacklist entries", removed))
}

// FlagStaleLeads appends a follow-up note to leads that have been sitting
// in "new" longer than staleLeadAge. Status is left for a counsellor to
// change; the job only makes the backlog visible.
func (m *CronManager) FlagStaleLeads() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	jobName := "flag_stale_leads"
	cutoff := time.Now().Add(-staleLeadAge)

	var stale []model.Lead
	err := m.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", model.LeadStatusNew, cutoff).
		Where("notes NOT LIKE ?", "%[follow-up overdue]%").
		Find(&stale).Error
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to query stale leads: %w", err))
		return
	}

	if len(stale) == 0 {
		m.logJobComplete(jobName, "No stale leads")
		return
	}

	flagged := 0
	for _, lead := range stale {
		note := strings.TrimSpace(lead.Notes + "\n[follow-up overdue] no contact since " +
			lead.CreatedAt.Format("2006-01-02"))
		err := m.db.WithContext(ctx).
			Model(&model.Lead{}).
			Where("id = ?", lead.ID).
			Update("notes", note).Error
		if err != nil {
			log.Printf("[CRON] Failed to flag lead %d: %v", lead.ID, err)
			continue
		}
		flagged++
	}

	m.logJobComplete(jobName, fmt.Sprintf("Flagged %d stale leads", flagged))
}

// DailyLeadDigest logs yesterday's intake and the current funnel shape.
// Uses the raw report store so the scan doesn't go through the ORM pool.
func (m *CronManager) DailyLeadDigest() {
	jobName := "daily_lead_digest"

	if m.reports == nil {
		m.logJobComplete(jobName, "Report store unavailable, skipped")
		return
	}

	since := time.Now().Add(-24 * time.Hour)
	newLeads, err := m.reports.LeadsCreatedSince(since)
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to count new leads: %w", err))
		return
	}

	statusCounts, err := m.reports.LeadStatusCounts()
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to fetch funnel counts: %w", err))
		return
	}

	topPrograms, err := m.reports.TopInterestPrograms(5)
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to fetch top programs: %w", err))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "New leads (24h): %d; funnel:", newLeads)
	for _, status := range []model.LeadStatus{
		model.LeadStatusNew, model.LeadStatusContacted,
		model.LeadStatusQualified, model.LeadStatusConverted,
	} {
		fmt.Fprintf(&sb, " %s=%d", status, statusCounts[string(status)])
	}
	if len(topPrograms) > 0 {
		sb.WriteString("; top programs:")
		for _, p := range topPrograms {
			fmt.Fprintf(&sb, " %q(%d)", p.Title, p.Count)
		}
	}

	m.logJobComplete(jobName, sb.String())
}
