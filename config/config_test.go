package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "info", cfg.Server.LogLevel)
		assert.False(t, cfg.Server.LogPretty)
		assert.Equal(t, "0.12", cfg.Register.TaxRate.String())
		assert.Equal(t, "₱", cfg.Register.CurrencySymbol)
		assert.Equal(t, 1500*time.Millisecond, cfg.Register.ProcessingDelay)
		assert.Equal(t, 500*time.Millisecond, cfg.Register.FlashDuration)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, 8*time.Hour, cfg.Auth.TokenTTL)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, "pos_service", cfg.Database.DatabaseName)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("TAX_RATE", "0.075")
		_ = os.Setenv("CURRENCY_SYMBOL", "$")
		_ = os.Setenv("CHECKOUT_PROCESSING_DELAY", "2s")
		_ = os.Setenv("FLASH_DURATION", "250ms")
		_ = os.Setenv("AUTH_ENABLED", "true")
		_ = os.Setenv("API_KEYS", "key1,key2")
		_ = os.Setenv("CASHIER_PIN_HASH", "$2a$10$hash")
		_ = os.Setenv("JWT_TTL", "1h")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, "0.075", cfg.Register.TaxRate.String())
		assert.Equal(t, "$", cfg.Register.CurrencySymbol)
		assert.Equal(t, 2*time.Second, cfg.Register.ProcessingDelay)
		assert.Equal(t, 250*time.Millisecond, cfg.Register.FlashDuration)
		assert.True(t, cfg.Auth.Enabled)
		assert.True(t, cfg.Auth.APIKeys["key1"])
		assert.True(t, cfg.Auth.APIKeys["key2"])
		assert.Equal(t, "$2a$10$hash", cfg.Auth.CashierPINHash)
		assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("AUTH_ENABLED", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("TAX_RATE", "twelve")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, "0.12", cfg.Register.TaxRate.String())
	})

	t.Run("ignores negative tax rate", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("TAX_RATE", "-0.1")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "0.12", cfg.Register.TaxRate.String())
	})

	t.Run("parses API keys with whitespace", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("API_KEYS", " key1 , key2 , key3 ")
		defer os.Clearenv()

		cfg := Load()

		assert.True(t, cfg.Auth.APIKeys["key1"])
		assert.True(t, cfg.Auth.APIKeys["key2"])
		assert.True(t, cfg.Auth.APIKeys["key3"])
	})

	t.Run("returns nil for empty API keys", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Nil(t, cfg.Auth.APIKeys)
	})

	t.Run("appends CORS origins to defaults", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", "https://pos.example.com, ")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"https://pos.example.com",
		}, cfg.Server.CORSOrigins)
	})
}
