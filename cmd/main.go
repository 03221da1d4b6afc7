// Package main is the entry point for the pos-service application.
//
// @title           POS Service API
// @version         1.0.0
// @description     Point-of-sale register: catalog, cart table, 12% tax and a simulated checkout.
//
//	One register session per process. Cart changes are rejected while a checkout is open.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/pos-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key, used when AUTH_ENABLED is set and cashier login is not configured.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Cashier session token, "Bearer <token>".
//
// @tag.name        Catalog
// @tag.description Products on sale
//
// @tag.name        Cart
// @tag.description Cart table operations
//
// @tag.name        Checkout
// @tag.description Checkout dialog
//
// @tag.name        Auth
// @tag.description Cashier login
//
// @tag.name        Audit
// @tag.description Register audit trail
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	_ "github.com/guttosm/pos-service/docs" // swagger docs

	"github.com/guttosm/pos-service/config"
	"github.com/guttosm/pos-service/internal/app"
)

func main() {
	// A missing .env is fine; the environment wins over it.
	_ = godotenv.Load()

	cfg := config.Load()
	application := app.InitializeApp(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := app.NewServer(application.Router, cfg.Server.Port, cfg.Server.ShutdownTimeout)
	runErr := server.Run(ctx)

	if err := application.Close(context.Background()); err != nil {
		log.Error().Err(err).Msg("Cleanup failed")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}
