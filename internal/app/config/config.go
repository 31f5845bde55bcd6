package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefix of environment overrides, e.g. STOREFRONT_PAYMENT_SECRET_KEY
const EnvPrefix = "STOREFRONT"

// Config application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Lmstfy   LmstfyConfig   `mapstructure:"lmstfy"`
	Postal   PostalConfig   `mapstructure:"postal"`
	Shipping ShippingConfig `mapstructure:"shipping"`
	Carrier  CarrierConfig  `mapstructure:"carrier"`
	Payment  PaymentConfig  `mapstructure:"payment"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Worker   WorkerConfig   `mapstructure:"worker"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
	Debug    bool   `mapstructure:"debug"`
}

type ServerConfig struct {
	Port              string        `mapstructure:"port"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins    []string      `mapstructure:"allowed_origins"`
}

type MySQLConfig struct {
	DSN         string `mapstructure:"dsn"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	QuoteTTL time.Duration `mapstructure:"quote_ttl"`
}

type LmstfyConfig struct {
	Host       string        `mapstructure:"host"`
	Port       int           `mapstructure:"port"`
	Namespace  string        `mapstructure:"namespace"`
	Token      string        `mapstructure:"token"`
	OrderQueue string        `mapstructure:"order_queue"`
	Delay      time.Duration `mapstructure:"delay"`
}

// PostalConfig where the postal reference table is loaded from
type PostalConfig struct {
	Source      string `mapstructure:"source"` // embedded | csv | dbf | postgres
	Path        string `mapstructure:"path"`
	PostgresDSN string `mapstructure:"postgres_dsn"`
}

// ShippingConfig pricing constants
type ShippingConfig struct {
	Formula           string  `mapstructure:"formula"` // zone | itemized
	OriginZip         string  `mapstructure:"origin_zip"`
	CarrierBase       float64 `mapstructure:"carrier_base"`
	Overhead          float64 `mapstructure:"overhead"`
	FuelRate          float64 `mapstructure:"fuel_rate"`
	PerPound          float64 `mapstructure:"per_pound"`
	Geographic        float64 `mapstructure:"geographic"`
	RemoteGeographic  float64 `mapstructure:"remote_geographic"`
	Seasonal          float64 `mapstructure:"seasonal"`
	EstimatedDelivery string  `mapstructure:"estimated_delivery"`
}

type CarrierConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type PaymentConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	SecretKey string        `mapstructure:"secret_key"`
	Currency  string        `mapstructure:"currency"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type AdminConfig struct {
	Token string `mapstructure:"token"`
}

type WorkerConfig struct {
	Name       string           `mapstructure:"name"`
	Subscriber SubscriberConfig `mapstructure:"subscriber"`
	Processor  ProcessorConfig  `mapstructure:"processor"`
}

type SubscriberConfig struct {
	Threads      int           `mapstructure:"threads"`
	Rate         time.Duration `mapstructure:"rate"`
	Timeout      time.Duration `mapstructure:"timeout"`
	TTR          time.Duration `mapstructure:"ttr"`
	ErrorBackoff time.Duration `mapstructure:"error_backoff"`
}

type ProcessorConfig struct {
	Threads    int           `mapstructure:"threads"`
	BufferSize int           `mapstructure:"buffer_size"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "storefront")
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.debug", false)

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_header_timeout", 5*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.allowed_origins", []string{})

	v.SetDefault("mysql.dsn", "")
	v.SetDefault("mysql.auto_migrate", false)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.quote_ttl", 10*time.Minute)

	v.SetDefault("lmstfy.host", "")
	v.SetDefault("lmstfy.port", 7777)
	v.SetDefault("lmstfy.namespace", "storefront")
	v.SetDefault("lmstfy.token", "")
	v.SetDefault("lmstfy.order_queue", "order_reconcile")
	v.SetDefault("lmstfy.delay", 15*time.Second)

	v.SetDefault("postal.source", "embedded")
	v.SetDefault("postal.path", "")
	v.SetDefault("postal.postgres_dsn", "")

	v.SetDefault("shipping.formula", "zone")
	v.SetDefault("shipping.origin_zip", "11549")
	v.SetDefault("shipping.carrier_base", 8.50)
	v.SetDefault("shipping.overhead", 15.00)
	v.SetDefault("shipping.fuel_rate", 0.18)
	v.SetDefault("shipping.per_pound", 0.75)
	v.SetDefault("shipping.geographic", 1.00)
	v.SetDefault("shipping.remote_geographic", 12.00)
	v.SetDefault("shipping.seasonal", 1.00)
	v.SetDefault("shipping.estimated_delivery", "3-5 business days")

	v.SetDefault("carrier.enabled", false)
	v.SetDefault("carrier.base_url", "")
	v.SetDefault("carrier.api_key", "")
	v.SetDefault("carrier.timeout", 3*time.Second)

	v.SetDefault("payment.base_url", "https://api.stripe.com")
	v.SetDefault("payment.secret_key", "")
	v.SetDefault("payment.currency", "usd")
	v.SetDefault("payment.timeout", 8*time.Second)

	v.SetDefault("admin.token", "")

	v.SetDefault("worker.name", "order-reconcile")
	v.SetDefault("worker.subscriber.threads", 2)
	v.SetDefault("worker.subscriber.rate", 100*time.Millisecond)
	v.SetDefault("worker.subscriber.timeout", 3*time.Second)
	v.SetDefault("worker.subscriber.ttr", 30*time.Second)
	v.SetDefault("worker.subscriber.error_backoff", 2*time.Second)
	v.SetDefault("worker.processor.threads", 4)
	v.SetDefault("worker.processor.buffer_size", 16)
	v.SetDefault("worker.processor.timeout", 20*time.Second)
}

// Load reads the yaml file at configPath, then applies STOREFRONT_* env overrides.
// An empty configPath loads defaults and env only.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config failed: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	cfg.Shipping.Formula = strings.ToLower(strings.TrimSpace(cfg.Shipping.Formula))
	cfg.Postal.Source = strings.ToLower(strings.TrimSpace(cfg.Postal.Source))

	return &cfg, nil
}

// LoadDefault loads config/config.yaml
func LoadDefault() (*Config, error) {
	return Load("config/config.yaml")
}

// Validate checks what the API server needs to start
func (c *Config) Validate() error {
	if c.MySQL.DSN == "" {
		return fmt.Errorf("mysql.dsn is required")
	}
	if err := c.ValidateShipping(); err != nil {
		return err
	}
	if c.Payment.SecretKey == "" {
		return fmt.Errorf("payment.secret_key is required (set %s_PAYMENT_SECRET_KEY)", EnvPrefix)
	}
	if c.Lmstfy.Host == "" {
		return fmt.Errorf("lmstfy.host is required")
	}
	if c.Carrier.Enabled && c.Carrier.BaseURL == "" {
		return fmt.Errorf("carrier.base_url is required when carrier.enabled is true")
	}
	return nil
}

// ValidateShipping checks the shipping and postal sections only, used by the CLI
func (c *Config) ValidateShipping() error {
	switch c.Shipping.Formula {
	case "zone", "itemized":
	default:
		return fmt.Errorf("shipping.formula must be zone or itemized, got %q", c.Shipping.Formula)
	}
	if c.Shipping.OriginZip == "" {
		return fmt.Errorf("shipping.origin_zip is required")
	}
	if c.Shipping.CarrierBase < 0 || c.Shipping.Overhead < 0 {
		return fmt.Errorf("shipping.carrier_base and shipping.overhead must not be negative")
	}
	switch c.Postal.Source {
	case "embedded":
	case "csv", "dbf":
		if c.Postal.Path == "" {
			return fmt.Errorf("postal.path is required for source %s", c.Postal.Source)
		}
	case "postgres":
		if c.Postal.PostgresDSN == "" {
			return fmt.Errorf("postal.postgres_dsn is required for source postgres")
		}
	default:
		return fmt.Errorf("unknown postal.source %q", c.Postal.Source)
	}
	return nil
}

// ValidateWorker checks what the reconcile worker needs to start
func (c *Config) ValidateWorker() error {
	if c.MySQL.DSN == "" {
		return fmt.Errorf("mysql.dsn is required")
	}
	if c.Lmstfy.Host == "" {
		return fmt.Errorf("lmstfy.host is required")
	}
	if c.Lmstfy.OrderQueue == "" {
		return fmt.Errorf("lmstfy.order_queue is required")
	}
	if c.Payment.SecretKey == "" {
		return fmt.Errorf("payment.secret_key is required")
	}
	if c.Worker.Subscriber.Threads <= 0 || c.Worker.Processor.Threads <= 0 {
		return fmt.Errorf("worker threads must be positive")
	}
	return nil
}
