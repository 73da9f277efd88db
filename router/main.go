package router

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/edumitra/edumitra-api/database"
	"github.com/edumitra/edumitra-api/handlers"
	admin_handlers "github.com/edumitra/edumitra-api/handlers/admin"
	auth_handlers "github.com/edumitra/edumitra-api/handlers/auth"
	institution_handlers "github.com/edumitra/edumitra-api/handlers/institution"
	lead_handlers "github.com/edumitra/edumitra-api/handlers/lead"
	program_handlers "github.com/edumitra/edumitra-api/handlers/program"
	"github.com/edumitra/edumitra-api/services"
	"github.com/edumitra/edumitra-api/services/storage"
	"github.com/edumitra/edumitra-api/services/webmeta"
	"github.com/edumitra/edumitra-api/utils/auth"
	"github.com/edumitra/edumitra-api/utils/cache"
	"github.com/edumitra/edumitra-api/utils/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, store database.Storage) {
	// Get JWT secret from environment
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "edumitra-api"
	}

	// Initialize JWT manager with config
	jwtConfig := auth.JWTConfig{
		Secret:        jwtSecret,
		Expiry:        15 * time.Minute,   // Access token expires in 15 minutes
		RefreshExpiry: 7 * 24 * time.Hour, // Refresh token expires in 7 days
		Issuer:        jwtIssuer,
	}
	jwtManager := auth.NewJWTManager(jwtConfig)

	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Initialize Redis cache for brute force protection
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection will be disabled.", err)
	}

	// Initialize brute force protection
	var bruteForceProtection *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	}

	// Initialize auth middleware with DB for blacklist checking
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	// Initialize Spaces client for asset uploads (optional)
	var spacesClient *storage.SpacesClient
	if os.Getenv("SPACES_ACCESS_KEY") != "" {
		spacesClient, err = storage.NewSpacesClient(storage.SpacesConfig{
			AccessKey: os.Getenv("SPACES_ACCESS_KEY"),
			SecretKey: os.Getenv("SPACES_SECRET_KEY"),
			Bucket:    os.Getenv("SPACES_BUCKET"),
			Region:    os.Getenv("SPACES_REGION"),
			Endpoint:  os.Getenv("SPACES_ENDPOINT"),
			CDNURL:    os.Getenv("SPACES_CDN_URL"),
		})
		if err != nil {
			log.Printf("Warning: Failed to create Spaces client: %v. Uploads will be disabled.", err)
		}
	}

	// Initialize services
	leadService := services.NewLeadService(db)
	catalogService := services.NewCatalogService(db, rand.New(rand.NewSource(time.Now().UnixNano())))
	matcherService := services.NewMatcherService(db)
	analyticsService := services.NewAnalyticsService(db)
	metaFetcher := webmeta.NewFetcher()

	// Initialize public handlers
	leadHandler := lead_handlers.NewLeadHandler(db, leadService)
	programHandler := program_handlers.NewProgramHandler(db, catalogService, matcherService)
	institutionHandler := institution_handlers.NewInstitutionHandler(db, catalogService)

	// Initialize admin handlers
	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, bruteForceProtection)
	adminLeadHandler := admin_handlers.NewLeadHandler(db, leadService)
	adminProgramHandler := admin_handlers.NewProgramHandler(db)
	adminInstitutionHandler := admin_handlers.NewInstitutionHandler(db, metaFetcher)
	adminUploadHandler := admin_handlers.NewUploadHandler(db, spacesClient)
	adminAnalyticsHandler := admin_handlers.NewAnalyticsHandler(analyticsService)

	// Apply security middleware
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:3001"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Health check endpoint (public)
	app.Get("/ping", handlers.HandleCheckHealth(store))

	// API v1 group
	api := app.Group("/api/v1")

	// ==================== Public website endpoints ====================

	// Lead intake
	api.Post("/leads", leadHandler.Create)
	api.Post("/leads/quick-connect", leadHandler.QuickConnect)

	// Program catalog
	programs := api.Group("/programs")
	programs.Get("/", programHandler.List)
	programs.Get("/featured", programHandler.Featured)
	programs.Post("/match", programHandler.Match)
	programs.Get("/:id", programHandler.Get)

	// Institutions
	institutions := api.Group("/institutions")
	institutions.Get("/", institutionHandler.List)
	institutions.Get("/:slug", institutionHandler.Get)

	// ==================== Admin endpoints ====================

	admin := api.Group("/admin")

	// Auth routes
	adminAuth := admin.Group("/auth")
	if bruteForceProtection != nil {
		adminAuth.Post("/login", bruteForceProtection.CheckAndRecordAttempt(), authHandler.Login)
	} else {
		adminAuth.Post("/login", authHandler.Login)
	}
	adminAuth.Post("/refresh", authHandler.Refresh)
	adminAuth.Post("/logout", authMiddleware.Required(), authHandler.Logout)
	adminAuth.Get("/me", authMiddleware.Required(), authHandler.Me)

	// Everything below requires an authenticated admin
	protected := admin.Group("", authMiddleware.Required())

	// Lead management
	adminLeads := protected.Group("/leads")
	adminLeads.Get("/", adminLeadHandler.List)
	adminLeads.Post("/", adminLeadHandler.Create)
	adminLeads.Get("/:id", adminLeadHandler.Get)
	adminLeads.Patch("/:id", adminLeadHandler.Update)
	adminLeads.Delete("/:id", adminLeadHandler.Delete)

	// Program management
	adminPrograms := protected.Group("/programs")
	adminPrograms.Get("/", adminProgramHandler.List)
	adminPrograms.Post("/", adminProgramHandler.Create)
	adminPrograms.Get("/:id", adminProgramHandler.Get)
	adminPrograms.Patch("/:id", adminProgramHandler.Update)
	adminPrograms.Delete("/:id", adminProgramHandler.Delete)

	// Institution management
	adminInstitutions := protected.Group("/institutions")
	adminInstitutions.Get("/", adminInstitutionHandler.List)
	adminInstitutions.Post("/", adminInstitutionHandler.Create)
	adminInstitutions.Post("/preview", adminInstitutionHandler.Preview)
	adminInstitutions.Get("/:id", adminInstitutionHandler.Get)
	adminInstitutions.Patch("/:id", adminInstitutionHandler.Update)
	adminInstitutions.Delete("/:id", adminInstitutionHandler.Delete)

	// Asset uploads
	protected.Post("/uploads", adminUploadHandler.Upload)
	protected.Delete("/uploads/:id", middleware.RequireRole("admin"), adminUploadHandler.DeleteAsset)

	// Analytics
	protected.Get("/analytics/dashboard", adminAnalyticsHandler.Dashboard)
}
