package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	RoutePrefix string

	// memory | mongo | redis | postgres | mysql
	StoreDriver string

	MongoURI string
	MongoDB  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	DatabaseDSN string

	JWTSecret      string
	JWTExpiryHours int

	CORSOrigins      string
	AllowAdminSignup bool
	SeedOnStart      bool
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		log.Printf("config: %s=%q is not a number, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		log.Printf("config: %s=%q is not a bool, using %t", key, v, fallback)
		return fallback
	}
	return b
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: .env file not found, using system environment variables")
	}

	return Config{
		Port:        getEnv("PORT", "8000"),
		RoutePrefix: getEnv("ROUTE_PREFIX", "/make-server-9b4de1de"),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", "memory")),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "alumni_portal"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		DatabaseDSN: getEnv("DATABASE_DSN", ""),

		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 72),

		CORSOrigins:      getEnv("CORS_ORIGINS", "*"),
		AllowAdminSignup: getEnvBool("ALLOW_ADMIN_SIGNUP", false),
		SeedOnStart:      getEnvBool("SEED_ON_START", false),
	}
}
