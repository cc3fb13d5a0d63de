// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/food-order-service/config"
	"github.com/guttosm/food-order-service/internal/circuitbreaker"
	"github.com/guttosm/food-order-service/internal/metrics"
	"github.com/guttosm/food-order-service/internal/repository"
	"github.com/guttosm/food-order-service/internal/service"
)

const databaseSetupTimeout = 5 * time.Second

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                      *repository.MongoDB
	MenuItemsRepo           repository.MenuItemsRepositoryInterface
	LoggingService          service.LoggingService
	MenuItemsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker      *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and creates the menu and log repositories.
// Returns nil if the database is disabled or the connection fails; the service then runs
// on the built-in menu without log storage.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), databaseSetupTimeout)
	defer cancel()

	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if ttlDays < 1 {
		ttlDays = 1
	}
	if err := db.SetLogsTTL(ctx, ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	menuItemsCB := newCircuitBreaker(cfg, "mongodb-menu-items")
	logsCB := newCircuitBreaker(cfg, "mongodb-logs")

	menuItemsRepo := repository.NewMenuItemsRepositoryWithCircuitBreaker(repository.NewMenuItemsRepository(db), menuItemsCB)
	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	return &DatabaseComponents{
		DB:                      db,
		MenuItemsRepo:           menuItemsRepo,
		LoggingService:          service.NewLoggingService(logsRepo),
		MenuItemsCircuitBreaker: menuItemsCB,
		LogsCircuitBreaker:      logsCB,
	}
}

func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.RecordCircuitBreakerState(name, int(to))
		},
	})
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
