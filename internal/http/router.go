package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/food-order-service/internal/metrics"
	"github.com/guttosm/food-order-service/internal/middleware"
	"github.com/guttosm/food-order-service/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	// LoggingService stores request and audit logs; nil disables storage.
	LoggingService service.LoggingService
	// Authenticator validates session tokens on session and cart routes.
	Authenticator middleware.Authenticator
	// RateLimiter and IdempotencyStore are created by the router when nil. Passing them
	// in lets the caller stop their goroutines on shutdown.
	RateLimiter      *middleware.RateLimiter
	IdempotencyStore *middleware.IdempotencyStore
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		RequestTimeout:    30 * time.Second,
		EnableIdempotency: true,
	}
}

// NewRouter creates and configures the Gin router for the food order service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	if handler != nil {
		NewOrderingRoutes(handler).RegisterRoutes(api, &cfg)
	}
	return router
}

func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding",
			"Authorization", middleware.SessionTokenHeader, middleware.IdempotencyKeyHeader,
			middleware.RequestIDHeader, "Cache-Control", "X-Requested-With",
		},
		ExposeHeaders: []string{
			middleware.RequestIDHeader, middleware.IdempotencyReplayedHeader, "Location",
			"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After",
		},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	var logWriter middleware.LogWriter
	if cfg.LoggingService != nil {
		logWriter = cfg.LoggingService
	}

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(logWriter),
		middleware.ErrorHandler(),
	)

	router.Use(func(c *gin.Context) {
		if logWriter != nil {
			c.Set(loggingServiceKey, logWriter)
		}
		c.Next()
	})
}

func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
