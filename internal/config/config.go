package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret string
	JWTTTL    time.Duration

	// Size of the rolling availability window shown to athletes.
	CalendarDays int

	// Default gym location used when availability rows carry none.
	DefaultLocation string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASS"),
		DBName:     getEnv("DB_NAME", "suivicoach"),
		DBPort:     getEnv("DB_PORT", "5432"),

		JWTSecret: getEnv("JWT_SECRET", "change-me"),

		DefaultLocation: getEnv("DEFAULT_LOCATION", "boutique biotech merignac"),
	}

	ttlMinutes, err := strconv.Atoi(getEnv("JWT_TTL_MINUTES", "1440"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL_MINUTES: %w", err)
	}
	cfg.JWTTTL = time.Duration(ttlMinutes) * time.Minute

	cfg.CalendarDays, err = strconv.Atoi(getEnv("CALENDAR_DAYS", "14"))
	if err != nil {
		return nil, fmt.Errorf("invalid CALENDAR_DAYS: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
