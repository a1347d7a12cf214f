package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/greenlease/greenlease/internal/config"
	"github.com/greenlease/greenlease/internal/database"
	"github.com/greenlease/greenlease/internal/handlers"
	"github.com/greenlease/greenlease/internal/middleware"
	"github.com/greenlease/greenlease/internal/types"
	"github.com/greenlease/greenlease/internal/utils"

	_ "github.com/greenlease/greenlease/docs/api" // Swagger docs
)

// @title GreenLease API
// @version 1.0.0
// @description Eco-scored rental listing service with tenant feedback
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/greenlease/greenlease
// @contact.email dev@greenlease.io

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed demo data when asked and the catalog is empty
	if cfg.SeedDemoData {
		if err := database.SeedDemoData(db); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("greenlease")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	propertyHandler := &handlers.PropertyHandler{DB: db}
	feedbackHandler := &handlers.FeedbackHandler{DB: db}
	authHandler := &handlers.AuthHandler{DB: db}
	healthHandler := &handlers.HealthHandler{Config: cfg, DB: db}

	// Health
	api.Get("/health", healthHandler.Health)

	// Property routes (public GET, admin create/update/delete)
	api.Get("/properties", propertyHandler.ListProperties)
	api.Get("/properties/featured", propertyHandler.FeaturedProperties)
	api.Get("/properties/:id", propertyHandler.GetProperty)
	api.Post("/properties", middleware.AuthAdmin(cfg), propertyHandler.CreateProperty)
	api.Put("/properties/:id", middleware.AuthAdmin(cfg), propertyHandler.UpdateProperty)
	api.Delete("/properties/:id", middleware.AuthAdmin(cfg), propertyHandler.DeleteProperty)

	// Search routes
	api.Get("/search/eco", propertyHandler.SearchByEcoTier)
	api.Get("/search/cities", propertyHandler.CitySuggestions)

	// Statistics
	api.Get("/stats/eco", propertyHandler.EcoStatistics)

	// Feedback routes (public submit and read, admin moderation)
	api.Post("/feedback", feedbackHandler.SubmitFeedback)
	api.Get("/feedback/property/:propertyId", feedbackHandler.ListFeedbackByProperty)
	api.Get("/feedback/property/:propertyId/stats", feedbackHandler.FeedbackStats)
	api.Get("/feedback", middleware.AuthAdmin(cfg), feedbackHandler.ManageFeedback)
	api.Post("/feedback/:id/verify", middleware.AuthAdmin(cfg), feedbackHandler.VerifyFeedback)
	api.Delete("/feedback/:id", middleware.AuthAdmin(cfg), feedbackHandler.DeleteFeedback)

	// Auth
	api.Post("/auth/register", authHandler.Register)
	api.Get("/auth/profile", middleware.AuthUser(cfg), authHandler.Profile)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Authorizer is initialized lazily by the auth middleware
	log.Printf("Authorizer will be initialized on first authenticated request")

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Authorization failures from the middleware carry their own code and type
	var cerr *types.CustomError
	if errors.As(err, &cerr) {
		code = cerr.Code
		message = cerr.Message
		errorType = cerr.Type
	}

	// Validation failures that escaped a handler
	var verr *types.ValidationError
	if errors.As(err, &verr) {
		return utils.ValidationErrorResponse(c, verr)
	}

	return utils.ErrorResponse(c, message, code, errorType)
}
