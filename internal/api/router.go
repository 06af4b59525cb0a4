package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/socialnet/social-api/docs"
	"github.com/socialnet/social-api/internal/api/handler"
	"github.com/socialnet/social-api/internal/api/middleware"
	"github.com/socialnet/social-api/internal/core/service"
	"github.com/socialnet/social-api/internal/infrastructure/config"
	mongodb "github.com/socialnet/social-api/internal/infrastructure/db/mongo"
	redisdb "github.com/socialnet/social-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("social"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	reactionRepo := mongodb.NewReactionRepository(db)
	idemStore := redisdb.NewIdempotencyStore(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	profileService := service.NewProfileService(userRepo, log)
	postService := service.NewPostService(postRepo, userRepo, reactionRepo, idemStore, log)
	reactionService := service.NewReactionService(reactionRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	postHandler := handler.NewPostHandler(postService, reactionService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	authRequired := middleware.Auth(cfg.JWTSecret, userRepo)

	// --- Public routes ---
	e.GET("/", healthHandler.Root)
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected routes ---
	e.GET("/profile", profileHandler.Get, authRequired)
	e.PATCH("/profile", profileHandler.Update, authRequired)
	e.GET("/posts", postHandler.List, authRequired)
	e.POST("/posts", postHandler.Create, authRequired)
	e.DELETE("/posts/:postId", postHandler.Delete, authRequired)
	e.POST("/posts/:postId/react", postHandler.React, authRequired)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
