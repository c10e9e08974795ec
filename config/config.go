package config

import (
	"log"
	"os"
	"strconv"

	"github.com/opengive/auth-service/pkg/constant"
)

type Config struct {
	Env  string
	Port string

	DBURL string

	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessExpiryMin    int
	RefreshExpiryMin   int

	BcryptCost        int
	MaxFailedAttempts int
	LockoutMinutes    int

	RedisAddr      string
	RedisPassword  string
	CacheTTLSec    int

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	SentryDSN string
}

func Load() *Config {
	return &Config{
		Env:                getEnv("ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		DBURL:              mustGetEnv("DB_URL"),
		AccessTokenSecret:  mustGetEnv("JWT_ACCESS_SECRET"),
		RefreshTokenSecret: mustGetEnv("JWT_REFRESH_SECRET"),
		AccessExpiryMin:    getEnvAsInt("JWT_ACCESS_EXPIRY_MIN", 15),
		RefreshExpiryMin:   getEnvAsInt("JWT_REFRESH_EXPIRY_MIN", 10080),
		BcryptCost:         getEnvAsInt("BCRYPT_COST", constant.BcryptCost),
		MaxFailedAttempts:  getEnvAsInt("MAX_FAILED_ATTEMPTS", constant.MaxFailedAttempts),
		LockoutMinutes:     getEnvAsInt("LOCKOUT_MINUTES", constant.LockoutDurationMinutes),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		CacheTTLSec:        getEnvAsInt("CACHE_TTL_SEC", 300),
		SMTPHost:           getEnv("SMTP_HOST", ""),
		SMTPPort:           getEnvAsInt("SMTP_PORT", 587),
		SMTPUsername:       getEnv("SMTP_USERNAME", ""),
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:           getEnv("SMTP_FROM", ""),
		SentryDSN:          getEnv("SENTRY_DSN", ""),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
