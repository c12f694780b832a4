package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	OpenAIAPIKey    string
	GeminiAPIKey    string
	DefaultProvider string
	DatabaseURL     string
	HTTPPort        string
	LogLevel        string
	JWTSecret       string
}

var AppConfig Config

func LoadConfig() {
	err := godotenv.Load() // Load .env file if it exists
	if err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = Config{
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		DefaultProvider: getEnv("DEFAULT_PROVIDER", "openai"),
		DatabaseURL:     getEnv("DATABASE_URL", "lactamira.db"),
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
	}

	// Provider keys are deliberately optional: a missing credential routes
	// guidance requests to the built-in fallback documents instead of
	// failing startup.
	if AppConfig.OpenAIAPIKey == "" && AppConfig.GeminiAPIKey == "" {
		log.Println("Warning: no provider API keys configured, guidance will always use fallback documents")
	}

	if AppConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
