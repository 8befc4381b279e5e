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
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, 0.0, cfg.Store.SuggestFillRatio)
		assert.Equal(t, 50, cfg.Store.OrderListLimit)
		assert.Equal(t, "storefront", cfg.Database.DatabaseName)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, 5, cfg.Database.CircuitBreakerFailureThreshold)
		assert.Equal(t, 30*time.Second, cfg.Database.CircuitBreakerTimeout)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("SERVER_REQUEST_TIMEOUT", "5s")
		_ = os.Setenv("STORE_SUGGEST_FILL_RATIO", "0.8")
		_ = os.Setenv("STORE_ORDER_LIST_LIMIT", "20")
		_ = os.Setenv("MONGODB_ENABLED", "true")
		_ = os.Setenv("MONGODB_DATABASE", "storefront_test")
		_ = os.Setenv("CIRCUIT_BREAKER_FAILURE_THRESHOLD", "3")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, 0.8, cfg.Store.SuggestFillRatio)
		assert.Equal(t, 20, cfg.Store.OrderListLimit)
		assert.True(t, cfg.Database.Enabled)
		assert.Equal(t, "storefront_test", cfg.Database.DatabaseName)
		assert.Equal(t, 3, cfg.Database.CircuitBreakerFailureThreshold)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("STORE_SUGGEST_FILL_RATIO", "invalid")
		_ = os.Setenv("MONGODB_ENABLED", "invalid")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 0.0, cfg.Store.SuggestFillRatio)
		assert.False(t, cfg.Database.Enabled)
	})

	t.Run("always includes local development CORS origins", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")
		assert.Contains(t, cfg.Server.CORSOrigins, "http://127.0.0.1:3000")
	})

	t.Run("parses extra CORS origins with whitespace", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", " https://shop.example.com , https://admin.example.com ")
		defer os.Clearenv()

		cfg := Load()

		assert.Contains(t, cfg.Server.CORSOrigins, "https://shop.example.com")
		assert.Contains(t, cfg.Server.CORSOrigins, "https://admin.example.com")
		assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")
	})
}
