package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/storerating/platform/docs"
	"github.com/storerating/platform/internal/api/handler"
	"github.com/storerating/platform/internal/api/middleware"
	"github.com/storerating/platform/internal/core/domain"
	"github.com/storerating/platform/internal/core/service"
	"github.com/storerating/platform/internal/infrastructure/db/postgres"
	redisinfra "github.com/storerating/platform/internal/infrastructure/db/redis"
	healthhandlers "github.com/storerating/platform/internal/infrastructure/http/handlers"
	"github.com/storerating/platform/internal/pkg/config"
	"github.com/storerating/platform/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *pgxpool.Pool, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("store_ratings"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	storeRepo := postgres.NewStoreRepository(db)
	ratingRepo := postgres.NewRatingRepository(db)

	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	limiter := redisinfra.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)

	authService := service.NewAuthService(userRepo, tokens, limiter, cfg.BcryptCost, log)
	ratingService := service.NewRatingService(ratingRepo, storeRepo, log)
	storeService := service.NewStoreService(storeRepo)
	ownerService := service.NewOwnerService(storeRepo, ratingService, log)
	adminService := service.NewAdminService(userRepo, storeRepo, ratingRepo, cfg.BcryptCost, log)

	authHandler := handler.NewAuthHandler(authService)
	storeHandler := handler.NewStoreHandler(storeService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	ownerHandler := handler.NewOwnerHandler(ownerService)
	adminHandler := handler.NewAdminHandler(adminService)

	authMW := middleware.Auth(tokens, log)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authMW)
	auth.PATCH("/password", authHandler.ChangePassword, authMW)

	// --- Rater routes ---
	stores := e.Group("/v1/stores", authMW, middleware.RBAC(domain.RoleRater))
	stores.GET("", storeHandler.List)
	stores.GET("/:id", storeHandler.Get)
	stores.POST("/:id/ratings", ratingHandler.Submit)

	// --- Owner routes (admins pass the ownership gate in the service) ---
	owner := e.Group("/v1/owner", authMW, middleware.RBAC(domain.RoleOwner, domain.RoleAdmin))
	owner.GET("/dashboard", ownerHandler.Dashboard)
	owner.GET("/stores/:id/ratings", ownerHandler.StoreRatings)

	// --- Admin routes ---
	admin := e.Group("/v1/admin", authMW, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/stats", adminHandler.Stats)
	admin.POST("/users", adminHandler.AddUser)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/:id", adminHandler.UserDetail)
	admin.POST("/stores", adminHandler.AddStore)
	admin.GET("/stores", adminHandler.ListStores)

	// --- Observability and docs (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
