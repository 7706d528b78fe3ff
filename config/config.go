package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Public base URL used when constructing file links.
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL"`

	// File storage. Backend is either "local" or "cloudinary".
	StorageBackend      string `mapstructure:"STORAGE_BACKEND"`
	StorageRoot         string `mapstructure:"STORAGE_ROOT"`
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// Consent forms signed longer ago than this are reported as expired.
	// Zero disables expiry entirely.
	ConsentValidityDays int `mapstructure:"CONSENT_VALIDITY_DAYS"`

	// Wizard sessions are discarded after this many minutes of inactivity.
	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MINUTES"`

	StripeKey string `mapstructure:"STRIPE_KEY"`
	SentryDSN string `mapstructure:"SENTRY_DSN"`

	// Kafka audit event stream. Empty brokers disable publishing.
	KafkaBrokers    string `mapstructure:"KAFKA_BROKERS"`
	KafkaAuditTopic string `mapstructure:"KAFKA_AUDIT_TOPIC"`

	// Elasticsearch. Empty address disables indexed search.
	ElasticsearchAddr string `mapstructure:"ELASTICSEARCH_ADDR"`

	// Static key guarding mutating admin endpoints.
	AdminKey string `mapstructure:"ADMIN_KEY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "aurora")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	viper.SetDefault("STORAGE_BACKEND", "local")
	viper.SetDefault("STORAGE_ROOT", "./storage")
	viper.SetDefault("CONSENT_VALIDITY_DAYS", 365)
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("KAFKA_AUDIT_TOPIC", "aurora.audit")
	viper.SetDefault("ADMIN_KEY", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
