package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration shared by all services
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// XRPLConfig holds ledger connectivity and platform wallet configuration.
// The platform account is a single keypair shared by mints, offers, refunds
// and artist payouts; it is the serialization point for all ledger writes.
type XRPLConfig struct {
	WebSocketURL    string `mapstructure:"websocket_url"`
	PlatformAddress string `mapstructure:"platform_address"`
	PlatformSeed    string `mapstructure:"platform_seed"`
}

// NotifyConfig holds the chat-webhook side channel configuration. An empty
// URL disables notifications without error.
type NotifyConfig struct {
	WebhookURL  string        `mapstructure:"webhook_url"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// NATSConfig holds NATS JetStream configuration for the sale-event
// publisher. An empty URL disables event publishing.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	ConnectionName string        `mapstructure:"connection_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
}

// MarketConfig holds purchase-flow tunables
type MarketConfig struct {
	// PlatformFeePercent is the platform's cut of every sale; the artist
	// receives the remainder
	PlatformFeePercent int `mapstructure:"platform_fee_percent"`
	// DefaultRoyaltyPercent applies when a release has no royalty set
	DefaultRoyaltyPercent int `mapstructure:"default_royalty_percent"`
	// ReservationTTL bounds how long a prepare-step reservation is honored
	ReservationTTL time.Duration `mapstructure:"reservation_ttl"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	XRPL       XRPLConfig     `mapstructure:"xrpl"`
	Notify     NotifyConfig   `mapstructure:"notify"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Market     MarketConfig   `mapstructure:"market"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("xrpl.websocket_url", "wss://xrplcluster.com")
	v.SetDefault("notify.http_timeout", "10s")
	v.SetDefault("nats.stream_name", "MARKET_EVENTS")
	v.SetDefault("nats.connection_name", "marketplace-api")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("market.platform_fee_percent", 2)
	v.SetDefault("market.default_royalty_percent", 5)
	v.SetDefault("market.reservation_ttl", "15m")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and
// environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("WAVEMINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables. Viper
// needs this for env vars to map onto struct fields when no config file
// exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// XRPL
		"xrpl.websocket_url",
		"xrpl.platform_address",
		"xrpl.platform_seed",
		// Notify
		"notify.webhook_url",
		"notify.http_timeout",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.connection_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		// Market
		"market.platform_fee_percent",
		"market.default_royalty_percent",
		"market.reservation_ttl",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // later files override earlier ones
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
