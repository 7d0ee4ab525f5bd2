package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "cabbazar-api")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 0)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// Payment gateway config
	configs.Gateway.BaseURL = GetEnv("GATEWAY_BASE_URL", "https://api.razorpay.com/v1")
	configs.Gateway.KeyID = GetEnv("GATEWAY_KEY_ID", "")
	configs.Gateway.KeySecret = GetEnv("GATEWAY_KEY_SECRET", "")
	configs.Gateway.WebhookSecret = GetEnv("GATEWAY_WEBHOOK_SECRET", "")
	configs.Gateway.TimeoutSec = GetEnvAsInt("GATEWAY_TIMEOUT_SEC", 15)

	// Geocoder config
	configs.Geocoder.BaseURL = GetEnv("GEOCODER_BASE_URL", "")
	configs.Geocoder.APIKey = GetEnv("GEOCODER_API_KEY", "")
	configs.Geocoder.TimeoutSec = GetEnvAsInt("GEOCODER_TIMEOUT_SEC", 10)
	configs.Geocoder.CacheTTL = GetEnvAsInt("GEOCODER_CACHE_TTL", 3600)

	// Pricing config
	configs.Pricing.RateCardPath = GetEnv("PRICING_RATE_CARD_PATH", "")
	configs.Pricing.SearchTTL = GetEnvAsInt("PRICING_SEARCH_TTL", 900)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "logs/cabbazar.log")
	configs.Logger.Type = GetEnv("LOG_TYPE", "console")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
