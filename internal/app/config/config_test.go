package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
app:
  name: storefront-test
  log_level: debug
server:
  port: "9090"
mysql:
  dsn: "user:pass@tcp(localhost:3306)/shop"
lmstfy:
  host: "127.0.0.1"
shipping:
  formula: Itemized
  origin_zip: "11549"
worker:
  subscriber:
    timeout: 5s
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "storefront-test", cfg.App.Name)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "itemized", cfg.Shipping.Formula)
	assert.Equal(t, 8.50, cfg.Shipping.CarrierBase)
	assert.Equal(t, 15.00, cfg.Shipping.Overhead)
	assert.Equal(t, "3-5 business days", cfg.Shipping.EstimatedDelivery)
	assert.Equal(t, "embedded", cfg.Postal.Source)
	assert.Equal(t, 5*time.Second, cfg.Worker.Subscriber.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Worker.Subscriber.TTR)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("STOREFRONT_PAYMENT_SECRET_KEY", "sk_test_123")
	t.Setenv("STOREFRONT_ADMIN_TOKEN", "admin-secret")
	t.Setenv("STOREFRONT_SHIPPING_FORMULA", "zone")

	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "sk_test_123", cfg.Payment.SecretKey)
	assert.Equal(t, "admin-secret", cfg.Admin.Token)
	assert.Equal(t, "zone", cfg.Shipping.Formula)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("payment secret required", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, sampleYAML))
		require.NoError(t, err)
		assert.ErrorContains(t, cfg.Validate(), "payment.secret_key")
	})

	t.Run("unknown formula", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		cfg.Shipping.Formula = "flat"
		assert.ErrorContains(t, cfg.ValidateShipping(), "shipping.formula")
	})

	t.Run("csv source needs path", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		cfg.Postal.Source = "csv"
		assert.ErrorContains(t, cfg.ValidateShipping(), "postal.path")
	})

	t.Run("worker", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.ErrorContains(t, cfg.ValidateWorker(), "mysql.dsn")
	})
}
