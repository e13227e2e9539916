package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config struct holds all configuration for the application.
type Config struct {
	DatabaseURL  string
	HttpPort     string
	Env          string
	LogLevel     string
	ImageWorkers int
	MaxDBRetries int
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	godotenv.Load()

	return &Config{
		DatabaseURL:  GetEnvOrFail("POSTGRES_URL"),
		HttpPort:     GetEnv("CONTACT_SERVICE_HTTP_PORT", "8071"),
		Env:          GetEnv("ENV", "production"),
		LogLevel:     GetEnv("LOG_LEVEL", "info"),
		ImageWorkers: GetEnvInt("CONTACT_SERVICE_IMAGE_WORKERS", 4),
		MaxDBRetries: 10,
	}, nil
}

// GetEnv retrieves an environment variable or returns a fallback.
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvInt retrieves an integer environment variable or returns a fallback.
func GetEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
		log.Warn().Str("variable", key).Str("value", value).Msg("Geçersiz sayısal değer, varsayılan kullanılıyor")
	}
	return fallback
}

// GetEnvOrFail retrieves an environment variable or fails fatally.
func GetEnvOrFail(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatal().Str("variable", key).Msg("Gerekli ortam değişkeni tanımlı değil")
	}
	return value
}
