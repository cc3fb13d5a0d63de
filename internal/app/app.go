// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/food-order-service/config"
	"github.com/guttosm/food-order-service/internal/http"
	"github.com/guttosm/food-order-service/internal/middleware"
)

// App is the wired application: its router and the components that own goroutines or
// connections.
type App struct {
	Engine *gin.Engine

	services *ServiceComponents
	database *DatabaseComponents
	router   *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *App {
	InitializeLogger(cfg.Log)

	dbComponents := InitializeDatabase(cfg.Database)
	if dbComponents != nil {
		middleware.InitAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	serviceComponents := InitializeServices(cfg, dbComponents)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return &App{
		Engine:   http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		services: serviceComponents,
		database: dbComponents,
		router:   routerComponents,
	}
}

// Close stops background workers, flushes pending logs and disconnects from MongoDB.
func (a *App) Close(ctx context.Context) {
	if rl := a.router.Config.RateLimiter; rl != nil {
		rl.Stop()
	}
	if store := a.router.Config.IdempotencyStore; store != nil {
		store.Stop()
	}
	a.services.Sessions.Stop()
	middleware.StopAsyncLogger()

	if err := a.database.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to close MongoDB connection")
	}
}
