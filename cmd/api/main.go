package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rce-newyear/greetings-api/config"
	"github.com/rce-newyear/greetings-api/internal/cache"
	"github.com/rce-newyear/greetings-api/internal/handlers"
	"github.com/rce-newyear/greetings-api/internal/middleware"
	"github.com/rce-newyear/greetings-api/internal/repository"
	"github.com/rce-newyear/greetings-api/internal/services"
	"github.com/rce-newyear/greetings-api/pkg/aigateway"
	"github.com/rce-newyear/greetings-api/pkg/db"
	"github.com/rce-newyear/greetings-api/pkg/httpclient"
	"github.com/rce-newyear/greetings-api/pkg/jwt"
	"github.com/rce-newyear/greetings-api/pkg/logger"
	"github.com/rce-newyear/greetings-api/pkg/metrics"
	"github.com/rce-newyear/greetings-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// registerGreetingRoutes registers the public greeting endpoints
func registerGreetingRoutes(
	group *gin.RouterGroup,
	generateRateLimiter, generalRateLimiter *middleware.RateLimiter,
	greetingHandler *handlers.GreetingHandler,
) {
	group.POST("/greetings/generate", generateRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(16*1024), greetingHandler.Generate)
	group.GET("/greetings/:slug", generalRateLimiter.Middleware(), greetingHandler.GetBySlug)
}

// registerAdminRoutes registers admin authentication and dashboard routes
func registerAdminRoutes(
	router *gin.Engine,
	cfg *config.Config,
	authRateLimiter, adminRateLimiter *middleware.RateLimiter,
	adminAuthHandler *handlers.AdminAuthHandler,
	adminGreetingsHandler *handlers.AdminGreetingsHandler,
	tokenManager *jwt.TokenManager,
) {
	// Skip admin routes if JWT is not configured
	if tokenManager == nil {
		logger.Warn("Admin routes disabled: JWT_SECRET not configured")
		return
	}

	sessionMiddleware := middleware.AdminSessionMiddleware(tokenManager, cfg.AdminSession.CookieDomain, cfg.AdminSession.CookieSecure)

	// Authentication routes (public)
	auth := router.Group("/api/v1/auth/admin")
	auth.POST("/login", authRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(4*1024), adminAuthHandler.Login)
	auth.POST("/logout", adminAuthHandler.Logout)
	auth.GET("/session", sessionMiddleware, adminAuthHandler.GetSession)

	// Dashboard routes (protected)
	admin := router.Group("/api/v1/admin")
	admin.Use(adminRateLimiter.Middleware(), sessionMiddleware)
	admin.GET("/greetings", adminGreetingsHandler.List)
	admin.DELETE("/greetings/:id", adminGreetingsHandler.Delete)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Greetings API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.ExporterEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Initialize PostgreSQL connection pool
	pool, err := db.NewPool(context.Background(), db.PoolConfig{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
	}
	defer db.Close(pool)

	// NOTE: Database migrations are run separately via the migrate command

	// HTTP clients: a short-timeout one for greeting generation so the
	// fallback path kicks in quickly, a standard one for fire-and-forget triggers
	gatewayHTTPClient := httpclient.NewClientWithTimeout(time.Duration(cfg.AIGateway.TimeoutSeconds) * time.Second)
	triggerHTTPClient := httpclient.NewStandardClient()

	gatewayClient := aigateway.NewClient(
		cfg.AIGateway.Endpoint,
		cfg.AIGateway.APIKey,
		cfg.AIGateway.Model,
		gatewayHTTPClient,
	)

	// Initialize repositories and cache
	greetingRepo := repository.NewGreetingRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	greetingCache := cache.NewGreetingCache(time.Duration(cfg.Cache.GreetingTTLSeconds) * time.Second)

	// Initialize JWT token manager (admin area disabled without a secret)
	var tokenManager *jwt.TokenManager
	if cfg.AdminSession.JWTSecret != "" {
		tokenManager = jwt.NewTokenManager(cfg.AdminSession.JWTSecret, cfg.AdminSession.JWTIssuer, cfg.AdminSession.SessionTTLHours)
	}

	// Initialize services
	greetingService := services.NewGreetingService(greetingRepo, gatewayClient, greetingCache, cfg, triggerHTTPClient)
	adminAuthService := services.NewAdminAuthService(adminRepo, tokenManager, cfg)
	adminGreetingsService := services.NewAdminGreetingsService(greetingRepo, greetingCache)

	// Initialize handlers
	greetingHandler := handlers.NewGreetingHandler(greetingService)
	adminAuthHandler := handlers.NewAdminAuthHandler(adminAuthService)
	adminGreetingsHandler := handlers.NewAdminGreetingsHandler(adminGreetingsService)
	healthHandler := handlers.NewHealthHandler(pool.Ping)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS configuration
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true, // Required for admin session cookies
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiters per endpoint type
	generalRateLimiter := middleware.NewRateLimiter(100, 200)   // reads, health, metrics
	generateRateLimiter := middleware.NewRateLimiter(2, 5)      // greeting generation hits a paid upstream
	adminRateLimiter := middleware.NewRateLimiter(20, 40)       // dashboard usage
	authRateLimiter := middleware.NewRateLimiter(0.0334, 5)     // ~2 login attempts per minute

	// Utility endpoints (not versioned - operational endpoints)
	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// API v1 routes
	v1 := router.Group("/api/v1")
	registerGreetingRoutes(v1, generateRateLimiter, generalRateLimiter, greetingHandler)

	// Admin routes (authentication and dashboard)
	registerAdminRoutes(router, cfg, authRateLimiter, adminRateLimiter, adminAuthHandler, adminGreetingsHandler, tokenManager)

	// Create HTTP server
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
