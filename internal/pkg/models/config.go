package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Gateway  GatewayConfig
	Geocoder GeocoderConfig
	Pricing  PricingConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// GatewayConfig contains payment gateway credentials. KeySecret signs the
// per-transaction order|payment signature; WebhookSecret authenticates the
// raw webhook body. The gateway issues them separately.
type GatewayConfig struct {
	BaseURL       string
	KeyID         string
	KeySecret     string
	WebhookSecret string
	TimeoutSec    int
}

// GeocoderConfig contains the distance-matrix collaborator configuration
type GeocoderConfig struct {
	BaseURL    string
	APIKey     string
	TimeoutSec int
	CacheTTL   int // seconds
}

// PricingConfig points at an optional rate card override file; the defaults
// are compiled in
type PricingConfig struct {
	RateCardPath string
	SearchTTL    int // seconds a search result stays valid
}

// NewRelicConfig contains New Relic configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
