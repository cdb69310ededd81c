package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DataFile      string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "5000"),
		DataFile:      getEnv("CC_DATA_FILE", "data.json"),
		JWTSecret:     getEnv("CC_JWT_SECRET", "change-me-to-a-secure-secret"),
		JWTIssuer:     getEnv("JWT_ISSUER", "careerpilot"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60*24*7), // 7 days
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
