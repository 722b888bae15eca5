package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	APIBaseURL     string
	SessionBackend string // "postgres" or "memory"
	SessionCookie  string
	SessionTTL     time.Duration
	RequestTimeout time.Duration
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
}

func LoadConfig() *Config {
	// Try to load .env file but don't fail if it doesn't exist
	_ = godotenv.Load()

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "720h"))
	if err != nil {
		log.Fatal("Invalid SESSION_TTL format. Use format like '720h'")
	}

	timeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "15s"))
	if err != nil {
		log.Fatal("Invalid REQUEST_TIMEOUT format. Use format like '15s'")
	}

	return &Config{
		AppPort:        getEnv("APP_PORT", "3000"),
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8080/api"),
		SessionBackend: getEnv("SESSION_BACKEND", "postgres"),
		SessionCookie:  getEnv("SESSION_COOKIE", "skillswap_session"),
		SessionTTL:     ttl,
		RequestTimeout: timeout,
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "skillswap_web"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
