// Package app provides authentication initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/pos-service/config"
	"github.com/guttosm/pos-service/internal/service"
)

// InitializeAuth returns the cashier login service, or nil when no PIN hash
// is configured and the API runs open or behind API keys.
func InitializeAuth(cfg config.AuthConfig) service.CashierAuth {
	if cfg.CashierPINHash == "" || cfg.JWTSecretKey == "" {
		if cfg.Enabled && len(cfg.APIKeys) > 0 {
			log.Info().Int("keys", len(cfg.APIKeys)).Msg("API key authentication enabled")
		} else {
			log.Warn().Msg("Authentication disabled - register API is open")
		}
		return nil
	}

	log.Info().Dur("token_ttl", cfg.TokenTTL).Msg("Cashier login enabled")
	return service.NewCashierAuth(cfg)
}
