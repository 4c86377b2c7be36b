package routes

import (
	"bizhub-backend/internal/api/handlers"
	"bizhub-backend/internal/api/middleware"
	"bizhub-backend/internal/auth"
	"bizhub-backend/internal/cache"
	"bizhub-backend/internal/config"
	"bizhub-backend/internal/metrics"
	"bizhub-backend/internal/repository"
	"bizhub-backend/internal/service"
	"bizhub-backend/internal/tenancy"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. redisClient may be nil,
// in which case sessions are read from the database only.
func SetupRoutes(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.MetricsEnabled {
		router.Use(metrics.Middleware())
	}

	// Initialize validator
	validator := service.NewValidator()

	resolver := tenancy.NewResolver(cfg.DefaultTenant())

	// Initialize repositories
	transactor := repository.NewTransactor(db, resolver)
	tenantRepo := repository.NewTenantRepository(db)
	businessRepo := repository.NewBusinessRepository(db)
	userRepo := repository.NewUserRepository(db)
	progressRepo := repository.NewOnboardingProgressRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db, transactor)
	supplierRepo := repository.NewSupplierRepository(db, transactor)

	// Initialize auth configuration and services
	authConfig := auth.NewAuthConfig(cfg)
	if err := authConfig.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth configuration: %w", err)
	}
	tokenService, err := auth.NewTokenService(authConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	var provider auth.IdentityProvider
	var verifier auth.AccessTokenVerifier
	if cfg.Auth0Enabled() {
		auth0Provider, err := auth.NewAuth0Provider(authConfig.Auth0)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize auth0 provider: %w", err)
		}
		provider = auth0Provider
		verifier = auth0Provider
	} else {
		logrus.Warn("AUTH0_DOMAIN is not set, using local password authentication")
		provider = auth.NewLocalProvider(userRepo)
	}

	var sessionCache service.SessionCache
	var healthCache handlers.Pinger
	if redisClient != nil {
		redisCache := cache.NewCache(redisClient)
		sessionCache = cache.NewSessionCache(redisCache)
		healthCache = redisCache
	}

	// Initialize services
	sessionService := service.NewSessionService(sessionRepo, userRepo, progressRepo, sessionCache, cfg.SessionTTL())
	onboardingService := service.NewOnboardingService(transactor, userRepo, tenantRepo, businessRepo, progressRepo, sessionService, validator)
	accountService := service.NewAccountService(userRepo, tenantRepo, progressRepo, provider, sessionService, tokenService, validator, cfg.AllowLocalSignup)
	menuService := service.NewMenuService(menuItemRepo, validator)
	supplierService := service.NewSupplierService(supplierRepo, validator)

	// Authentication strategies
	sessionAuth := auth.NewSessionAuthenticator(sessionService, authConfig.Cookie.Name)
	bearerAuth := auth.NewBearerAuthenticator(tokenService, verifier, accountService)
	authMiddleware := auth.NewAuthMiddleware(sessionAuth, bearerAuth)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, healthCache)
	authHandler := handlers.NewAuthHandler(accountService, authConfig.Cookie)
	sessionHandler := handlers.NewSessionHandler(accountService, sessionService, authConfig.Cookie)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService)
	menuHandler := handlers.NewMenuHandler(menuService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/password-login/", authHandler.PasswordLogin)
		authGroup.POST("/oauth-exchange/", authHandler.OAuthExchange)
		authGroup.POST("/signup/", authHandler.Signup)

		// Reads and changes need the session itself; a session is opened from a bearer token
		sessionV2 := authGroup.Group("/session-v2")
		{
			sessionV2.GET("", authMiddleware.RequireAuth(sessionAuth), sessionHandler.GetSession)
			sessionV2.POST("", authMiddleware.RequireAuth(bearerAuth), sessionHandler.CreateSession)
			sessionV2.PATCH("", authMiddleware.RequireAuth(sessionAuth), sessionHandler.UpdateSession)
			sessionV2.DELETE("", authMiddleware.RequireAuth(sessionAuth), sessionHandler.DeleteSession)
		}
	}

	// Onboarding routes run before the user has a tenant
	onboardingGroup := api.Group("/onboarding", authMiddleware.RequireAuth())
	{
		onboardingGroup.POST("/business-info", onboardingHandler.SubmitBusinessInfo)
		onboardingGroup.POST("/subscription", onboardingHandler.SelectSubscription)
		onboardingGroup.POST("/payment", onboardingHandler.CompletePayment)
		onboardingGroup.POST("/complete", onboardingHandler.Complete)
		onboardingGroup.GET("/status", onboardingHandler.GetStatus)
	}

	// Tenant-scoped routes
	tenantScoped := api.Group("", authMiddleware.RequireAuth(), middleware.TenantContext(userRepo))
	{
		menu := tenantScoped.Group("/menu/items")
		{
			menu.GET("", menuHandler.ListMenuItems)
			menu.POST("", menuHandler.CreateMenuItem)
			menu.GET("/:id", menuHandler.GetMenuItem)
			menu.PUT("/:id", menuHandler.UpdateMenuItem)
			menu.DELETE("/:id", menuHandler.DeleteMenuItem)
		}

		suppliers := tenantScoped.Group("/suppliers")
		{
			suppliers.GET("", supplierHandler.ListSuppliers)
			suppliers.POST("", supplierHandler.CreateSupplier)
			suppliers.GET("/:id", supplierHandler.GetSupplier)
			suppliers.DELETE("/:id", supplierHandler.DeleteSupplier)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, nil)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
