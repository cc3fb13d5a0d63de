// Package app provides service initialization.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/food-order-service/config"
	"github.com/guttosm/food-order-service/internal/repository"
	"github.com/guttosm/food-order-service/internal/service"
)

const catalogLoadTimeout = 10 * time.Second

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog  service.CatalogService
	Sessions *service.SessionStoreImpl
	Tokens   service.TokenService
	Ordering service.OrderingService
}

// InitializeServices builds the catalog, session store, token service and ordering
// service. The catalog comes from MongoDB when db is non-nil.
func InitializeServices(cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	var menuRepo repository.MenuItemsRepositoryInterface
	if db != nil {
		menuRepo = db.MenuItemsRepo
	}

	ctx, cancel := context.WithTimeout(context.Background(), catalogLoadTimeout)
	defer cancel()
	catalog := service.LoadCatalog(ctx, menuRepo)

	sessions := service.NewSessionStore(service.SessionStoreConfig{
		Capacity: cfg.Session.Capacity,
		IdleTTL:  cfg.Session.IdleTTL,
		Shards:   cfg.Session.Shards,
	}, catalog.SpicyDefault)

	tokens := service.NewTokenService(service.TokenConfig{
		SecretKey: cfg.Session.TokenSecret,
		TTL:       cfg.Session.TokenTTL,
	})

	ordering := service.NewOrderingService(catalog, sessions, tokens, service.OrderingConfig{
		StrictValidation: cfg.Ordering.StrictValidation,
	})

	log.Info().
		Str("catalog_source", catalog.Source()).
		Int("menu_items", len(catalog.List())).
		Bool("strict_validation", cfg.Ordering.StrictValidation).
		Msg("Ordering services initialized")

	return &ServiceComponents{
		Catalog:  catalog,
		Sessions: sessions,
		Tokens:   tokens,
		Ordering: ordering,
	}
}
