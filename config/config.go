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

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Trip session lifetime in minutes.
	SessionTTLMin int `mapstructure:"SESSION_TTL_MIN"`

	// Gemini generation service.
	GeminiAPIKey    string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel     string `mapstructure:"GEMINI_MODEL"`
	GenMaxAttempts  int    `mapstructure:"GEN_MAX_ATTEMPTS"`
	GenRetryDelayMS int    `mapstructure:"GEN_RETRY_DELAY_MS"`
	GenRequestSecs  int    `mapstructure:"GEN_REQUEST_TIMEOUT_SECS"`

	// Google Custom Search, used for activity images.
	ImageSearchAPIKey string `mapstructure:"IMAGE_SEARCH_API_KEY"`
	ImageSearchCX     string `mapstructure:"IMAGE_SEARCH_CX"`
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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("SESSION_TTL_MIN", 720)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("GEN_MAX_ATTEMPTS", 5)
	viper.SetDefault("GEN_RETRY_DELAY_MS", 2000)
	viper.SetDefault("GEN_REQUEST_TIMEOUT_SECS", 60)
	viper.SetDefault("IMAGE_SEARCH_API_KEY", "")
	viper.SetDefault("IMAGE_SEARCH_CX", "")

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
