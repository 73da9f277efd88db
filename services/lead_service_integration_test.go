package services

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/edumitra/edumitra-api/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openLeadTestDB connects to the database named by the DB_* environment
// variables. Tests using it only run with RUN_INTEGRATION_TESTS=true.
func openLeadTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=true to run")
	}
	for _, v := range []string{"DB_HOST", "DB_USER_NAME", "DB_PASSWORD", "DB_NAME", "DB_PORT"} {
		if os.Getenv(v) == "" {
			t.Skipf("%s not set", v)
		}
	}

	sslMode := os.Getenv("DB_SSL_MODE")
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER_NAME"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		sslMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Institution{},
		&model.Program{},
		&model.Lead{},
		&model.LeadProgramInterest{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func TestAttachInterestsIsIdempotent(t *testing.T) {
	db := openLeadTestDB(t)
	ctx := context.Background()
	suffix := time.Now().UnixNano()

	institution := model.Institution{
		Name: fmt.Sprintf("Interest Test University %d", suffix),
		Slug: fmt.Sprintf("interest-test-university-%d", suffix),
	}
	if err := db.Create(&institution).Error; err != nil {
		t.Fatalf("failed to create institution: %v", err)
	}
	program := model.Program{
		InstitutionID: institution.ID,
		DegreeType:    "MBA",
		Title:         fmt.Sprintf("Online MBA %d", suffix),
	}
	if err := db.Create(&program).Error; err != nil {
		t.Fatalf("failed to create program: %v", err)
	}
	t.Cleanup(func() {
		db.Unscoped().Delete(&model.Institution{}, institution.ID)
	})

	svc := NewLeadService(db)
	lead, err := svc.Create(ctx, LeadInput{
		FullName:         "Interest Tester",
		Email:            fmt.Sprintf("interest-%d@example.com", suffix),
		Phone:            "+91 98765 43210",
		SelectedPrograms: []int64{int64(program.ID)},
	})
	if err != nil {
		t.Fatalf("failed to create lead: %v", err)
	}
	t.Cleanup(func() {
		db.Unscoped().Delete(&model.Lead{}, lead.ID)
	})

	// Re-submitting the same pair must not add a second row
	svc.attachInterests(ctx, lead.ID, []uint{program.ID})
	svc.attachInterests(ctx, lead.ID, []uint{program.ID, program.ID})

	var n int64
	if err := db.Model(&model.LeadProgramInterest{}).
		Where("lead_id = ? AND program_id = ?", lead.ID, program.ID).
		Count(&n).Error; err != nil {
		t.Fatalf("failed to count interests: %v", err)
	}
	if n != 1 {
		t.Errorf("expected exactly one interest row, got %d", n)
	}
}
