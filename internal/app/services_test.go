//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pos-service/config"
	"github.com/guttosm/pos-service/internal/domain/model"
)

type countingSink struct {
	entries []*model.AuditEntry
}

func (s *countingSink) Log(entry *model.AuditEntry) bool {
	s.entries = append(s.entries, entry)
	return true
}

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name            string
		cfg             config.RegisterConfig
		expectedTaxRate string
		expectedTotal   string
	}{
		{
			name:            "configured rate and currency",
			cfg:             config.RegisterConfig{TaxRate: decimal.RequireFromString("0.075"), CurrencySymbol: "$"},
			expectedTaxRate: "0.075",
			expectedTotal:   "$6.44",
		},
		{
			name:            "zero rate",
			cfg:             config.RegisterConfig{TaxRate: decimal.Zero, CurrencySymbol: "₱"},
			expectedTaxRate: "0",
			expectedTotal:   "₱5.99",
		},
		{
			name:            "negative rate falls back to twelve percent",
			cfg:             config.RegisterConfig{TaxRate: decimal.RequireFromString("-0.1")},
			expectedTaxRate: "0.12",
			expectedTotal:   "₱6.71",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeServices(tt.cfg, nil)
			require.NotNil(t, components.Register)

			update, err := components.Register.AddProduct(context.Background(), "Burger")
			require.NoError(t, err)

			assert.Equal(t, tt.expectedTaxRate, update.Cart.Summary.TaxRate.String())
			assert.Equal(t, tt.expectedTotal, components.Register.Formatter().Format(update.Cart.Summary.Total))
		})
	}
}

func TestInitializeServices_WithSink(t *testing.T) {
	sink := &countingSink{}
	cfg := config.RegisterConfig{
		TaxRate:         decimal.RequireFromString("0.12"),
		ProcessingDelay: time.Second,
		FlashDuration:   time.Second,
	}

	components := InitializeServices(cfg, sink)
	_, err := components.Register.AddProduct(context.Background(), "Water")
	require.NoError(t, err)

	require.Len(t, sink.entries, 1)
	assert.Equal(t, model.ActionAddProduct, sink.entries[0].Action)
}
