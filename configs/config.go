package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBDriver string
	DBSource string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	JWTTTL      time.Duration

	// optional; empty disables the menu cache
	RedisURL string
	CacheTTL time.Duration

	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Port:     getEnv("PORT", "8080"),
		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBSource: getEnv("DB_SOURCE", "restaurant.db"),

		JWTSecret:   getEnv("JWT_SECRET", "changeme"),
		JWTIssuer:   getEnv("JWT_ISSUER", "restaurant-management-api"),
		JWTAudience: getEnv("JWT_AUDIENCE", "restaurant-management-clients"),
		JWTTTL:      time.Duration(getEnvAsInt("JWT_TTL_MINUTES", 60)) * time.Minute,

		RedisURL: os.Getenv("REDIS_URL"),
		CacheTTL: time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 300)) * time.Second,

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
