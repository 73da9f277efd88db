package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/edumitra/edumitra-api/config"
	_ "github.com/lib/pq"
)

// ReportStore is a thin database/sql store used for reporting queries that
// don't need the ORM (cron digests, health checks). It holds its own
// connection so report scans never contend with the request pool.
type ReportStore struct {
	db *sql.DB
}

// StartReportStore opens a raw PostgreSQL connection for reporting
func StartReportStore() (*ReportStore, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}

	connectStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv.DB_HOST,
		getEnv.DB_PORT,
		getEnv.DB_USER_NAME,
		getEnv.DB_PASSWORD,
		getEnv.DB_NAME,
		getEnv.DB_SSL_MODE,
	)

	db, err := sql.Open("postgres", connectStr)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	log.Println("Successfully connected reporting store to PostgreSQL.")

	return &ReportStore{db: db}, nil
}

// Close closes the reporting connection
func (s *ReportStore) Close() error {
	return s.db.Close()
}

// HealthCheck verifies the reporting connection is alive
func (s *ReportStore) HealthCheck() error {
	return s.db.Ping()
}

// LeadStatusCounts returns the number of leads per funnel status
func (s *ReportStore) LeadStatusCounts() (map[string]int64, error) {
	query := `
		SELECT status, COUNT(*) FROM leads
		WHERE deleted_at IS NULL
		GROUP BY status;
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

// LeadsCreatedSince counts leads created at or after the given time
func (s *ReportStore) LeadsCreatedSince(since time.Time) (int64, error) {
	query := `
		SELECT COUNT(*) FROM leads
		WHERE deleted_at IS NULL AND created_at >= $1;
	`
	var count int64
	err := s.db.QueryRow(query, since).Scan(&count)
	return count, err
}

// ProgramInterestCount is one row of the top-interest report
type ProgramInterestCount struct {
	ProgramID uint
	Title     string
	Count     int64
}

// TopInterestPrograms returns the programs with the most interest links
func (s *ReportStore) TopInterestPrograms(limit int) ([]ProgramInterestCount, error) {
	query := `
		SELECT p.id, p.title, COUNT(lpi.id) AS interest_count
		FROM programs p
		JOIN lead_program_interests lpi ON lpi.program_id = p.id
		WHERE p.deleted_at IS NULL
		GROUP BY p.id, p.title
		ORDER BY interest_count DESC, p.id
		LIMIT $1;
	`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []ProgramInterestCount{}
	for rows.Next() {
		var row ProgramInterestCount
		if err := rows.Scan(&row.ProgramID, &row.Title, &row.Count); err != nil {
			return nil, err
		}
		results = append(results, row)
	}

	return results, rows.Err()
}
