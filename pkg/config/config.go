package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	GinMode             string
	DatabaseURL         string
	JWTSecret           string
	JWTExpiry           time.Duration
	Location            *time.Location
	FirebaseCredentials string
	ReminderInterval    time.Duration
	UploadDir           string
	MaxUploadBytes      int64
	AllowedOrigins      []string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:                getEnv("PORT", "8080"),
		GinMode:             getEnv("GIN_MODE", "release"),
		DatabaseURL:         getEnv("DATABASE_URL", "taskboard.db"),
		JWTSecret:           getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiry:           getDuration("JWT_EXPIRY", 7*24*time.Hour),
		Location:            getLocation("APP_TIMEZONE"),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		ReminderInterval:    getDuration("REMINDER_INTERVAL", time.Minute),
		UploadDir:           getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:      getInt64("MAX_UPLOAD_BYTES", 10<<20),
		AllowedOrigins:      getList("CORS_ALLOWED_ORIGINS"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			return parsed
		}
		log.Printf("[Config] Ignoring invalid %s=%q", key, raw)
	}
	return defaultValue
}

func getInt64(key string, defaultValue int64) int64 {
	if raw := os.Getenv(key); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			return parsed
		}
		log.Printf("[Config] Ignoring invalid %s=%q", key, raw)
	}
	return defaultValue
}

// getLocation resolves the zone used for "server-local" day boundaries.
func getLocation(key string) *time.Location {
	name := os.Getenv(key)
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("[Config] Unknown %s=%q, falling back to local time", key, name)
		return time.Local
	}
	return loc
}

func getList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
