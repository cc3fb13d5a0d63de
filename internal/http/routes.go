package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/food-order-service/internal/middleware"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// OrderingRoutes registers the menu, session, customization and cart routes.
type OrderingRoutes struct {
	handler *Handler
}

var _ RouteGroup = (*OrderingRoutes)(nil)

// NewOrderingRoutes creates the ordering route group.
func NewOrderingRoutes(handler *Handler) *OrderingRoutes {
	return &OrderingRoutes{handler: handler}
}

// RegisterRoutes mounts the routes on rg. The menu and session creation are public;
// everything else requires a session token.
func (r *OrderingRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	h := r.handler

	public := rg.Group("")
	if cfg.RequestTimeout > 0 {
		public.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}
	if limiter := rateLimiter(cfg); limiter != nil {
		// Public routes are keyed by IP since no session is known yet.
		public.Use(limiter.RateLimit())
	}
	public.GET("/menu", h.ListMenu)
	public.GET("/menu/:itemId", h.GetMenuItem)
	public.POST("/sessions", h.StartSession)

	if cfg.Authenticator == nil {
		return
	}

	protected := rg.Group("")
	if cfg.RequestTimeout > 0 {
		protected.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}
	protected.Use(middleware.SessionAuth(cfg.Authenticator))
	if limiter := rateLimiter(cfg); limiter != nil {
		protected.Use(limiter.RateLimit())
	}
	if cfg.EnableIdempotency {
		store := cfg.IdempotencyStore
		if store == nil {
			store = middleware.DefaultIdempotencyConfig().Store
			cfg.IdempotencyStore = store
		}
		protected.Use(middleware.Idempotency(middleware.IdempotencyConfig{Store: store, Enabled: true}))
	}

	protected.DELETE("/session", h.EndSession)
	protected.GET("/session/history", h.SessionHistory)
	protected.GET("/session/customizations/:itemId", h.GetCustomization)
	protected.POST("/session/customizations/:itemId/toggle", h.ToggleIngredient)
	protected.PUT("/session/customizations/:itemId/spicy-level", h.SetSpicyLevel)

	protected.POST("/cart/commit", h.CommitLine)
	protected.GET("/cart", h.GetCart)
	protected.GET("/cart/total", h.GetCartTotal)
}

// rateLimiter returns the configured limiter, creating it on first use.
func rateLimiter(cfg *RouterConfig) *middleware.RateLimiter {
	if cfg.RateLimit <= 0 {
		return nil
	}
	if cfg.RateLimiter == nil {
		cfg.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	}
	return cfg.RateLimiter
}
