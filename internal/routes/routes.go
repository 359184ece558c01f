// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"time"

	"taxpilot/internal/config"
	"taxpilot/internal/handlers"
	"taxpilot/internal/middleware"
	"taxpilot/internal/repositories"
	"taxpilot/internal/services/analysis"
	"taxpilot/internal/services/auth"
	"taxpilot/internal/services/billing"
	"taxpilot/internal/services/entitlements"
	"taxpilot/internal/services/featuregate"
	"taxpilot/internal/services/recommend"
	"taxpilot/internal/services/taxengine"
	"taxpilot/internal/services/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewCompanyProfileRepository(db)
	subscriptionRepo := repositories.NewSubscriptionRepository(db)
	usageRepo := repositories.NewUsageRepository(db)
	analysisRepo := repositories.NewAnalysisRepository(db)

	// Initialize services
	authService := auth.NewService(userRepo)
	userService := user.NewService(userRepo)

	engine := taxengine.New(taxengine.DefaultRateTable())
	recommender := recommend.NewService(recommend.Config{
		APIKey:  config.GetEnv("OPENROUTER_API_KEY", ""),
		Timeout: time.Duration(config.GetIntEnv("OPENROUTER_TIMEOUT_SECONDS", 20)) * time.Second,
	})
	analysisService := analysis.NewService(engine, recommender, analysisRepo, repositories.CacheService)
	entitlementsService := entitlements.NewService(subscriptionRepo, usageRepo, profileRepo, repositories.CacheService)
	billingService := billing.NewService(subscriptionRepo, config.GetEnv("STRIPE_SECRET_KEY", ""))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	calculatorHandler := handlers.NewCalculatorHandler(analysisService, engine)
	profileHandler := handlers.NewProfileHandler(profileRepo)
	accountHandler := handlers.NewAccountHandler(entitlementsService, analysisService)
	billingHandler := handlers.NewBillingHandler(billingService)
	healthHandler := handlers.NewHealthHandler()

	// Middleware instances
	authMiddleware := middleware.NewAuthMiddleware(authService)
	gateMiddleware := middleware.NewFeatureGateMiddleware(entitlementsService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to TaxPilot API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})
	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/login", authHandler.LoginUser)
	api.Post("/register", userHandler.RegisterUser)
	api.Post("/refresh", authHandler.RefreshToken)

	// Canton rate data is public reference material.
	api.Get("/cantons", calculatorHandler.Cantons)
	api.Get("/cantons/:code", calculatorHandler.Canton)

	// Stripe delivers events here; the handler verifies the signature,
	// so the route stays outside the auth middleware.
	api.Post("/billing/webhook", billingHandler.Webhook)

	// Calculator endpoints work anonymously; signed-in callers are gated
	// against their plan and their usage is recorded on success.
	calculator := api.Group("/calculator", authMiddleware.OptionalHandler)
	calculator.Post("/analyze",
		gateMiddleware.RequireIfAuthenticated(featuregate.ActionCalculations, (*featuregate.Gate).CanCalculateTaxes),
		calculatorHandler.Analyze)
	calculator.Post("/compare",
		gateMiddleware.RequireIfAuthenticated(featuregate.ActionCantonComparisons, (*featuregate.Gate).CanCompareCantons),
		calculatorHandler.Compare)
	calculator.Post("/top-cantons", calculatorHandler.TopCantons)

	// Protected routes with auth middleware
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/logout", authHandler.LogoutUser)
	protected.Post("/change-password", authHandler.ChangePassword)
	protected.Get("/me", userHandler.Me)
	protected.Put("/me", userHandler.UpdateMe)

	// Saved company profiles; creating one is a gated action.
	profiles := protected.Group("/profiles")
	profiles.Post("/",
		gateMiddleware.Require(featuregate.ActionSavedProfiles, (*featuregate.Gate).CanSaveCompanyProfile),
		profileHandler.Create)
	profiles.Get("/", profileHandler.List)
	profiles.Get("/:id", profileHandler.Get)
	profiles.Put("/:id", profileHandler.Update)
	profiles.Delete("/:id", profileHandler.Delete)

	// Account and plan endpoints
	account := protected.Group("/account")
	account.Get("/limits", accountHandler.Limits)
	account.Get("/usage", accountHandler.Usage)
	account.Get("/history", accountHandler.History)

	// Billing
	billingGroup := protected.Group("/billing")
	billingGroup.Get("/plans", billingHandler.Plans)
	billingGroup.Post("/checkout", billingHandler.CreateCheckout)
}
