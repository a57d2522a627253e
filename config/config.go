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
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// External backend API.
	BackendAPIURL         string `mapstructure:"BACKEND_API_URL"`
	BackendTimeoutSeconds int    `mapstructure:"BACKEND_TIMEOUT_SECONDS"`

	// Storefront values handed to the UI.
	PayPalClientID string `mapstructure:"PAYPAL_CLIENT_ID"`
	Currency       string `mapstructure:"CURRENCY"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisCartDB    int    `mapstructure:"REDIS_CART_DB"`
	RedisBookingDB int    `mapstructure:"REDIS_BOOKING_DB"`
	RedisEventsDB  int    `mapstructure:"REDIS_EVENTS_DB"`
	RedisWorkerDB  int    `mapstructure:"REDIS_WORKER_DB"`

	// Booking schedule used for the "any barber" synthetic availability.
	SlotLeadMinutes     int    `mapstructure:"SLOT_LEAD_MINUTES"`
	SlotIntervalMinutes int    `mapstructure:"SLOT_INTERVAL_MINUTES"`
	OpenTime            string `mapstructure:"OPEN_TIME"`
	CloseTime           string `mapstructure:"CLOSE_TIME"`
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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("BACKEND_API_URL", "http://localhost:5000/api")
	viper.SetDefault("BACKEND_TIMEOUT_SECONDS", 10)
	viper.SetDefault("PAYPAL_CLIENT_ID", "")
	viper.SetDefault("CURRENCY", "EUR")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_CART_DB", 1)
	viper.SetDefault("REDIS_BOOKING_DB", 2)
	viper.SetDefault("REDIS_EVENTS_DB", 3)
	viper.SetDefault("REDIS_WORKER_DB", 4)
	viper.SetDefault("SLOT_LEAD_MINUTES", 30)
	viper.SetDefault("SLOT_INTERVAL_MINUTES", 30)
	viper.SetDefault("OPEN_TIME", "09:00")
	viper.SetDefault("CLOSE_TIME", "18:30")

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
