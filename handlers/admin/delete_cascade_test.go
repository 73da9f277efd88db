package admin

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/edumitra/edumitra-api/model"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB connects to the database named by the DB_* environment
// variables and migrates the catalog and lead tables. Tests using it only
// run with RUN_INTEGRATION_TESTS=true.
func openTestDB(t *testing.T) *gorm.DB {
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
		&model.ProgramFee{},
		&model.ProgramFAQ{},
		&model.ProgramAsset{},
		&model.Lead{},
		&model.LeadProgramInterest{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

type cascadeFixture struct {
	institution model.Institution
	program     model.Program
	fee         model.ProgramFee
	faq         model.ProgramFAQ
	lead        model.Lead
	interest    model.LeadProgramInterest
}

// seedCascadeFixture creates one institution with one program (fee + FAQ
// attached) and one lead interested in that program.
func seedCascadeFixture(t *testing.T, db *gorm.DB) *cascadeFixture {
	t.Helper()

	suffix := time.Now().UnixNano()
	f := &cascadeFixture{}

	f.institution = model.Institution{
		Name: fmt.Sprintf("Cascade Test University %d", suffix),
		Slug: fmt.Sprintf("cascade-test-university-%d", suffix),
	}
	if err := db.Create(&f.institution).Error; err != nil {
		t.Fatalf("failed to create institution: %v", err)
	}

	f.program = model.Program{
		InstitutionID: f.institution.ID,
		DegreeType:    "MBA",
		Title:         fmt.Sprintf("Online MBA %d", suffix),
		TotalFee:      250000,
	}
	if err := db.Create(&f.program).Error; err != nil {
		t.Fatalf("failed to create program: %v", err)
	}

	f.fee = model.ProgramFee{ProgramID: f.program.ID, Label: "Semester 1", Amount: 62500}
	if err := db.Create(&f.fee).Error; err != nil {
		t.Fatalf("failed to create fee: %v", err)
	}
	f.faq = model.ProgramFAQ{ProgramID: f.program.ID, Question: "Is it UGC approved?", Answer: "Yes"}
	if err := db.Create(&f.faq).Error; err != nil {
		t.Fatalf("failed to create faq: %v", err)
	}

	f.lead = model.Lead{
		FullName: "Cascade Tester",
		Email:    fmt.Sprintf("cascade-%d@example.com", suffix),
		Phone:    "919876543210",
	}
	if err := db.Create(&f.lead).Error; err != nil {
		t.Fatalf("failed to create lead: %v", err)
	}
	f.interest = model.LeadProgramInterest{LeadID: f.lead.ID, ProgramID: f.program.ID}
	if err := db.Create(&f.interest).Error; err != nil {
		t.Fatalf("failed to create interest: %v", err)
	}

	t.Cleanup(func() {
		db.Unscoped().Delete(&model.Lead{}, f.lead.ID)
		db.Unscoped().Delete(&model.Institution{}, f.institution.ID)
	})

	return f
}

// countRows counts including soft-deleted rows, so a delete that only set
// deleted_at still shows up.
func countRows(t *testing.T, db *gorm.DB, m interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Unscoped().Model(m).Where(query, args...).Count(&n).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return n
}

func TestDeleteInstitutionCascadesToPrograms(t *testing.T) {
	db := openTestDB(t)
	f := seedCascadeFixture(t, db)

	app := fiber.New()
	h := NewInstitutionHandler(db, nil)
	app.Delete("/institutions/:id", h.Delete)

	req := httptest.NewRequest(fiber.MethodDelete, fmt.Sprintf("/institutions/%d", f.institution.ID), nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	if n := countRows(t, db, &model.Institution{}, "id = ?", f.institution.ID); n != 0 {
		t.Errorf("institution row still present after delete")
	}
	if n := countRows(t, db, &model.Program{}, "id = ?", f.program.ID); n != 0 {
		t.Errorf("program row survived institution delete")
	}
	if n := countRows(t, db, &model.ProgramFee{}, "program_id = ?", f.program.ID); n != 0 {
		t.Errorf("fee rows survived institution delete")
	}
	if n := countRows(t, db, &model.ProgramFAQ{}, "program_id = ?", f.program.ID); n != 0 {
		t.Errorf("faq rows survived institution delete")
	}
	if n := countRows(t, db, &model.LeadProgramInterest{}, "program_id = ?", f.program.ID); n != 0 {
		t.Errorf("interest rows survived institution delete")
	}
	// The lead itself is not part of the cascade
	if n := countRows(t, db, &model.Lead{}, "id = ?", f.lead.ID); n != 1 {
		t.Errorf("lead row should survive institution delete")
	}
}

func TestDeleteProgramCascadesToChildren(t *testing.T) {
	db := openTestDB(t)
	f := seedCascadeFixture(t, db)

	app := fiber.New()
	h := NewProgramHandler(db)
	app.Delete("/programs/:id", h.Delete)

	req := httptest.NewRequest(fiber.MethodDelete, fmt.Sprintf("/programs/%d", f.program.ID), nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	if n := countRows(t, db, &model.Program{}, "id = ?", f.program.ID); n != 0 {
		t.Errorf("program row still present after delete")
	}
	if n := countRows(t, db, &model.ProgramFee{}, "program_id = ?", f.program.ID); n != 0 {
		t.Errorf("fee rows survived program delete")
	}
	if n := countRows(t, db, &model.ProgramFAQ{}, "program_id = ?", f.program.ID); n != 0 {
		t.Errorf("faq rows survived program delete")
	}
	if n := countRows(t, db, &model.LeadProgramInterest{}, "program_id = ?", f.program.ID); n != 0 {
		t.Errorf("interest rows survived program delete")
	}
	if n := countRows(t, db, &model.Institution{}, "id = ?", f.institution.ID); n != 1 {
		t.Errorf("institution should survive program delete")
	}
}

func TestDuplicateProgramTitleTranslatesToDuplicatedKey(t *testing.T) {
	db := openTestDB(t)
	f := seedCascadeFixture(t, db)

	dup := model.Program{
		InstitutionID: f.institution.ID,
		DegreeType:    f.program.DegreeType,
		Title:         f.program.Title,
	}
	err := db.Create(&dup).Error
	if err == nil {
		db.Unscoped().Delete(&model.Program{}, dup.ID)
		t.Fatal("expected duplicate (institution, title) insert to fail")
	}
	// Create maps this to a 409 instead of a generic 500
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("expected gorm.ErrDuplicatedKey, got %v", err)
	}
}

func TestDeleteLeadCascadesToInterests(t *testing.T) {
	db := openTestDB(t)
	f := seedCascadeFixture(t, db)

	app := fiber.New()
	h := NewLeadHandler(db, nil)
	app.Delete("/leads/:id", h.Delete)

	req := httptest.NewRequest(fiber.MethodDelete, fmt.Sprintf("/leads/%d", f.lead.ID), nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	if n := countRows(t, db, &model.Lead{}, "id = ?", f.lead.ID); n != 0 {
		t.Errorf("lead row still present after delete")
	}
	if n := countRows(t, db, &model.LeadProgramInterest{}, "lead_id = ?", f.lead.ID); n != 0 {
		t.Errorf("interest rows survived lead delete")
	}
	if n := countRows(t, db, &model.Program{}, "id = ?", f.program.ID); n != 1 {
		t.Errorf("program should survive lead delete")
	}
}
