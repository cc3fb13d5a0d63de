// Package main is the entry point for the food-order-service application.
//
// @title           Food Order Service API
// @version         1.0.0
// @description     Menu, per-session item customization and cart API for a restaurant ordering kiosk.
//
//	Customers browse the menu, customize items (add-on ingredients and spice level) and commit
//	them as immutable cart lines. Prices are integer won.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/food-order-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  SessionToken
// @in                          header
// @name                        Authorization
// @description                 Session token returned by POST /api/sessions, sent as "Bearer <token>". X-Session-Token is also accepted.
//
// @tag.name        Menu
// @tag.description Menu catalog
//
// @tag.name        Session
// @tag.description Ordering sessions
//
// @tag.name        Customization
// @tag.description In-progress item customization
//
// @tag.name        Cart
// @tag.description Committed cart lines and totals
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	_ "github.com/guttosm/food-order-service/docs" // swagger docs

	"github.com/guttosm/food-order-service/config"
	"github.com/guttosm/food-order-service/internal/app"
)

//go:generate swag init --generalInfo cmd/main.go --dir ../ --output ../docs --parseInternal

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Warn().Err(err).Msg("Failed to load .env file")
	}
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Engine, cfg.Server.Port)
	server.OnShutdown(func(ctx context.Context) {
		application.Close(ctx)
	})

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
