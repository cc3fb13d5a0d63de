// Package app provides router configuration.
package app

import (
	"github.com/guttosm/food-order-service/config"
	"github.com/guttosm/food-order-service/internal/http"
	"github.com/guttosm/food-order-service/internal/middleware"
	"github.com/guttosm/food-order-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}

	handler := http.NewHandler(services.Ordering, loggingService)
	healthHandler := http.NewHealthHandler()

	healthHandler.RegisterInfo("catalog_source", func() interface{} { return services.Catalog.Source() })
	healthHandler.RegisterInfo("active_sessions", func() interface{} { return services.Sessions.Len() })
	if dbComponents != nil {
		healthHandler.RegisterChecker("mongodb", dbComponents.DB)
		healthHandler.RegisterCircuitBreaker("mongodb_menu_items", dbComponents.MenuItemsCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		Authenticator:     services.Ordering,
		IdempotencyStore:  middleware.NewIdempotencyStore(middleware.IdempotencyKeyTTL, 0),
	}
	if cfg.Server.RateLimit > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
