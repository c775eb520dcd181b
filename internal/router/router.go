package router

import (
	"time"

	"github.com/anonto42/socially/backend/internal/handlers"
	"github.com/anonto42/socially/backend/internal/middleware"
	"github.com/anonto42/socially/backend/internal/repositories"
	"github.com/anonto42/socially/backend/internal/services"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps is everything SetupRoutes wires into the handlers
type Deps struct {
	DB          *gorm.DB
	Verifier    handlers.TokenVerifier
	Revalidator services.Revalidator
	JWTSecret   string
	TokenTTL    time.Duration
	Logger      *zap.Logger
}

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, logger *zap.Logger) {
	e.Use(eMiddleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	logger.Debug("global middleware configured")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, deps Deps) {
	logger := deps.Logger
	revalidator := deps.Revalidator
	if revalidator == nil {
		revalidator = services.NopRevalidator{}
	}

	e.GET("/health", handlers.HealthCheck)

	store := repositories.NewStore(deps.DB)
	userService := services.NewUserService(store, logger.Named("users"))
	followService := services.NewFollowService(store, userService, revalidator, logger.Named("follows"))
	postService := services.NewPostService(store, userService, revalidator, logger.Named("posts"))
	notificationService := services.NewNotificationService(store, userService, logger.Named("notifications"))

	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userService, deps.Verifier, deps.JWTSecret, deps.TokenTTL, logger.Named("auth"))
	authHandler.RegisterAuthRoutes(authGroup)

	postHandler := handlers.NewPostHandler(postService)
	public := e.Group("/api/v1")
	postHandler.RegisterPublicPostRoutes(public)

	api := e.Group("/api/v1", middleware.JWTAuthMiddleware(deps.JWTSecret))

	userHandler := handlers.NewUserHandler(userService, postService)
	userHandler.RegisterProfileRoutes(api)

	postHandler.RegisterPostRoutes(api)

	followHandler := handlers.NewFollowHandler(followService, userService)
	followHandler.RegisterFollowRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(api)

	logger.Info("all routes configured", zap.Int("routes", len(e.Routes())))
}
