package database

import (
	"fmt"
	"log"
	"os"

	"github.com/edumitra/edumitra-api/model"
	"github.com/edumitra/edumitra-api/utils/auth"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("🌱 Starting database seeding...")

	if err := s.SeedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := s.SeedInstitutions(); err != nil {
		return fmt.Errorf("failed to seed institutions: %w", err)
	}

	if err := s.SeedPrograms(); err != nil {
		return fmt.Errorf("failed to seed programs: %w", err)
	}

	log.Println("✅ Database seeding completed successfully!")
	return nil
}

// SeedAdminUser creates the default admin account
func (s *Seeder) SeedAdminUser() error {
	var count int64
	if err := s.db.Model(&model.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Admin user already exists, skipping")
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@edumitra.in"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return fmt.Errorf("ADMIN_PASSWORD must be set to seed the admin user")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := model.AdminUser{
		Email:        email,
		PasswordHash: hash,
		Name:         "EduMitra Admin",
		Role:         "admin",
	}

	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Created admin user %s", email)
	return nil
}

// SeedInstitutions creates the demo partner institutions
func (s *Seeder) SeedInstitutions() error {
	var count int64
	if err := s.db.Model(&model.Institution{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Institutions already exist, skipping")
		return nil
	}

	institutions := []model.Institution{
		{
			Name:          "Manipal University Online",
			Slug:          "manipal-online",
			Location:      "Jaipur, Rajasthan",
			Accreditation: "NAAC A+, UGC-entitled",
			Website:       "https://onlinemanipal.example.com",
			Established:   2011,
			Description:   "Online degrees from the Manipal education group.",
		},
		{
			Name:          "Amity University Online",
			Slug:          "amity-online",
			Location:      "Noida, Uttar Pradesh",
			Accreditation: "NAAC A+, WES recognized",
			Website:       "https://amityonline.example.com",
			Established:   2005,
			Description:   "India's first UGC-entitled online degree platform.",
		},
		{
			Name:          "Symbiosis Centre for Distance Learning",
			Slug:          "symbiosis-scdl",
			Location:      "Pune, Maharashtra",
			Accreditation: "AICTE approved",
			Website:       "https://scdl.example.com",
			Established:   2001,
			Description:   "Distance and blended management programs.",
		},
	}

	if err := s.db.Create(&institutions).Error; err != nil {
		return err
	}

	log.Printf("Created %d institutions", len(institutions))
	return nil
}

// SeedPrograms creates demo programs across modes and fee bands
func (s *Seeder) SeedPrograms() error {
	var count int64
	if err := s.db.Model(&model.Program{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Programs already exist, skipping")
		return nil
	}

	var institutions []model.Institution
	if err := s.db.Order("id").Find(&institutions).Error; err != nil {
		return err
	}
	if len(institutions) < 3 {
		return fmt.Errorf("expected seeded institutions before programs")
	}

	programs := []model.Program{
		{
			InstitutionID:  institutions[0].ID,
			DegreeType:     "MBA",
			Title:          "Online MBA in Finance",
			DurationMonths: 24,
			DeliveryMode:   model.DeliveryModeOnline,
			TotalFee:       280000,
			ApplicationFee: 1500,
			EMIAvailable:   true,
			Highlights:     "Finance specialisation, CFA-aligned electives, live weekend classes",
			Outcomes:       "Roles in corporate finance, FP&A, and investment analysis",
			Eligibility:    "Graduation with 50% marks",
			Featured:       true,
		},
		{
			InstitutionID:  institutions[0].ID,
			DegreeType:     "MBA",
			Title:          "Online MBA in Marketing",
			DurationMonths: 24,
			DeliveryMode:   model.DeliveryModeOnline,
			TotalFee:       260000,
			ApplicationFee: 1500,
			EMIAvailable:   true,
			Highlights:     "Digital marketing labs, brand management capstone",
			Outcomes:       "Brand, growth, and performance marketing roles",
			Eligibility:    "Graduation with 50% marks",
		},
		{
			InstitutionID:  institutions[0].ID,
			DegreeType:     "MCA",
			Title:          "Online MCA",
			DurationMonths: 24,
			DeliveryMode:   model.DeliveryModeOnline,
			TotalFee:       160000,
			ApplicationFee: 1000,
			EMIAvailable:   true,
			Highlights:     "Full-stack development, cloud computing electives",
			Outcomes:       "Software engineering and DevOps roles",
			Eligibility:    "BCA/BSc with mathematics",
		},
		{
			InstitutionID:  institutions[1].ID,
			DegreeType:     "MBA",
			Title:          "Blended MBA in Business Analytics",
			DurationMonths: 24,
			DeliveryMode:   model.DeliveryModeBlended,
			TotalFee:       380000,
			ApplicationFee: 2000,
			EMIAvailable:   true,
			Highlights:     "Analytics bootcamps on campus, Python and SQL track",
			Outcomes:       "Data analyst and business analyst roles",
			Eligibility:    "Graduation with 50% marks",
			Featured:       true,
		},
		{
			InstitutionID:  institutions[1].ID,
			DegreeType:     "BBA",
			Title:          "Online BBA",
			DurationMonths: 36,
			DeliveryMode:   model.DeliveryModeOnline,
			TotalFee:       99000,
			ApplicationFee: 500,
			EMIAvailable:   false,
			Highlights:     "Foundation in management, entrepreneurship electives",
			Outcomes:       "Entry-level business and operations roles",
			Eligibility:    "10+2 in any stream",
		},
		{
			InstitutionID:  institutions[1].ID,
			DegreeType:     "MCom",
			Title:          "Online MCom",
			DurationMonths: 24,
			DeliveryMode:   model.DeliveryModeOnline,
			TotalFee:       120000,
			ApplicationFee: 800,
			EMIAvailable:   true,
			Highlights:     "Accounting standards, taxation, audit practice",
			Outcomes:       "Accounting and taxation careers",
			Eligibility:    "BCom or equivalent",
		},
		{
			InstitutionID:  institutions[2].ID,
			DegreeType:     "PGDM",
			Title:          "Weekend PGDM in Operations",
			DurationMonths: 18,
			DeliveryMode:   model.DeliveryModeWeekend,
			TotalFee:       210000,
			ApplicationFee: 1200,
			EMIAvailable:   true,
			Highlights:     "Supply chain simulations, weekend contact classes",
			Outcomes:       "Operations and supply chain management roles",
			Eligibility:    "Graduation, 1 year work experience preferred",
			MinExperience:  1,
		},
		{
			InstitutionID:  institutions[2].ID,
			DegreeType:     "MBA",
			Title:          "Executive MBA",
			DurationMonths: 15,
			DeliveryMode:   model.DeliveryModeOnCampus,
			TotalFee:       1250000,
			ApplicationFee: 3000,
			EMIAvailable:   true,
			Highlights:     "Leadership immersion, international study tour",
			Outcomes:       "Senior management transitions",
			Eligibility:    "Graduation, 5 years work experience",
			MinExperience:  5,
		},
	}

	if err := s.db.Create(&programs).Error; err != nil {
		return err
	}

	log.Printf("Created %d programs", len(programs))
	return nil
}
