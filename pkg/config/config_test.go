package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "JWT_EXPIRY", "APP_TIMEZONE", "REMINDER_INTERVAL", "MAX_UPLOAD_BYTES", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DatabaseURL != "taskboard.db" {
		t.Errorf("DatabaseURL = %q, want taskboard.db", cfg.DatabaseURL)
	}
	if cfg.JWTExpiry != 7*24*time.Hour {
		t.Errorf("JWTExpiry = %v, want 168h", cfg.JWTExpiry)
	}
	if cfg.ReminderInterval != time.Minute {
		t.Errorf("ReminderInterval = %v, want 1m", cfg.ReminderInterval)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Errorf("MaxUploadBytes = %d, want %d", cfg.MaxUploadBytes, 10<<20)
	}
	if cfg.Location != time.Local {
		t.Errorf("Location = %v, want Local", cfg.Location)
	}
	if cfg.AllowedOrigins != nil {
		t.Errorf("AllowedOrigins = %v, want nil", cfg.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_EXPIRY", "2h")
	t.Setenv("APP_TIMEZONE", "Asia/Ho_Chi_Minh")
	t.Setenv("MAX_UPLOAD_BYTES", "2048")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.JWTExpiry != 2*time.Hour {
		t.Errorf("JWTExpiry = %v", cfg.JWTExpiry)
	}
	if cfg.Location.String() != "Asia/Ho_Chi_Minh" {
		t.Errorf("Location = %v", cfg.Location)
	}
	if cfg.MaxUploadBytes != 2048 {
		t.Errorf("MaxUploadBytes = %d", cfg.MaxUploadBytes)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "soon")
	t.Setenv("APP_TIMEZONE", "Mars/Olympus")
	t.Setenv("MAX_UPLOAD_BYTES", "-1")

	cfg := Load()

	if cfg.JWTExpiry != 7*24*time.Hour {
		t.Errorf("JWTExpiry = %v", cfg.JWTExpiry)
	}
	if cfg.Location != time.Local {
		t.Errorf("Location = %v", cfg.Location)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Errorf("MaxUploadBytes = %d", cfg.MaxUploadBytes)
	}
}
