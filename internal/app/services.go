// Package app provides service initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/pos-service/config"
	"github.com/guttosm/pos-service/internal/pricing"
	"github.com/guttosm/pos-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Register *service.Register
}

// InitializeServices creates the register session with the configured tax,
// currency and timings. sink may be nil to run without an audit trail.
func InitializeServices(cfg config.RegisterConfig, sink service.AuditSink) *ServiceComponents {
	opts := registerOptions(cfg)
	if sink != nil {
		opts = append(opts, service.WithAuditSink(sink))
	}

	register := service.NewRegister(service.DefaultCatalog(), opts...)
	log.Info().
		Str("tax_rate", cfg.TaxRate.String()).
		Str("currency", cfg.CurrencySymbol).
		Int("products", len(register.Catalog())).
		Msg("Register ready")

	return &ServiceComponents{
		Register: register,
	}
}

func registerOptions(cfg config.RegisterConfig) []service.Option {
	var opts []service.Option

	policy, err := pricing.NewTaxPolicy(cfg.TaxRate)
	if err != nil {
		log.Warn().Err(err).Msg("Invalid tax rate, using default")
	} else {
		opts = append(opts, service.WithTaxPolicy(policy))
	}

	if cfg.CurrencySymbol != "" {
		opts = append(opts, service.WithCurrencySymbol(cfg.CurrencySymbol))
	}
	if cfg.ProcessingDelay > 0 {
		opts = append(opts, service.WithProcessingDelay(cfg.ProcessingDelay))
	}
	if cfg.FlashDuration > 0 {
		opts = append(opts, service.WithFlashDuration(cfg.FlashDuration))
	}
	return opts
}
