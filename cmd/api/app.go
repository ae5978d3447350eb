package main

import (
	"net/http"
	"os"

	"aura-crm/internal/handlers"
	"aura-crm/internal/middleware"
	"aura-crm/internal/notify"
	"aura-crm/internal/repositories"
	"aura-crm/internal/services"
	"aura-crm/internal/storage"
	"aura-crm/internal/validators"
	"aura-crm/pkg/cache"
	"aura-crm/pkg/config"
	"aura-crm/pkg/database"
	"aura-crm/pkg/logger"
	"aura-crm/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config               *config.Config
	Router               *gin.Engine
	AuthHandler          *handlers.AuthHandler
	UserHandler          *handlers.UserHandler
	PropertyHandler      *handlers.PropertyHandler
	LeadHandler          *handlers.LeadHandler
	CommunicationHandler *handlers.CommunicationHandler
	RateLimiter          *middleware.RateLimiter
	Server               *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeDatabase()
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the database connection
func (a *App) initializeDatabase() {
	if err := database.InitDB(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
}

// initialize the Redis cache
func (a *App) initializeCache() {
	if err := cache.InitRedis(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// repositories
	userRepo := repositories.NewUserRepository(database.DB)
	propertyRepo := repositories.NewPropertyRepository(database.DB)
	leadRepo := repositories.NewLeadRepository(database.DB)
	communicationRepo := repositories.NewCommunicationRepository(database.DB)
	propertyCache := repositories.NewPropertyCache(cache.RedisClient)

	// validators
	userValidator := validators.NewUserValidator()
	propertyValidator := validators.NewPropertyValidator()
	leadValidator := validators.NewLeadValidator()

	// image storage
	store, err := storage.NewStore(a.Config.Uploads.Dir, a.Config.Uploads.MaxFileBytes)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize upload storage: %v", err)
		os.Exit(1)
	}

	// notifications
	var notifier notify.Notifier
	if a.Config.SendGrid.APIKey != "" {
		notifier = notify.NewSendGridNotifier(a.Config.SendGrid.APIKey, a.Config.SendGrid.FromEmail, a.Config.SendGrid.FromName)
	} else {
		logger.GlobalLogger.Printf("SendGrid API key not set, email notifications disabled")
		notifier = notify.NewNoopNotifier()
	}

	// services
	userService := services.NewUserService(userRepo, userValidator, a.Config.JWT.Secret)
	propertyService := services.NewPropertyService(propertyRepo, propertyCache, propertyValidator, store)
	leadService := services.NewLeadService(leadRepo, userRepo, leadValidator, notifier)
	communicationService := services.NewCommunicationService(communicationRepo, leadRepo, userRepo, notifier)

	// handlers
	a.AuthHandler = handlers.NewAuthHandler(userService)
	a.UserHandler = handlers.NewUserHandler(userService)
	a.PropertyHandler = handlers.NewPropertyHandler(propertyService)
	a.LeadHandler = handlers.NewLeadHandler(leadService)
	a.CommunicationHandler = handlers.NewCommunicationHandler(communicationService)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	database.CloseDB()
	cache.CloseRedis()
}
