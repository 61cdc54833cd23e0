package config

import (
	"os"
	"testing"
)

func TestLoad_WithRequiredVars(t *testing.T) {
	os.Setenv("REDIS_URL", "redis://localhost:6379")
	os.Setenv("JWT_SECRET", "test-secret")
	defer func() {
		os.Unsetenv("REDIS_URL")
		os.Unsetenv("JWT_SECRET")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.RedisURL != "redis://localhost:6379" {
		t.Errorf("expected RedisURL to be set, got %s", cfg.RedisURL)
	}

	if cfg.JWTSecret != "test-secret" {
		t.Errorf("expected JWTSecret to be set, got %s", cfg.JWTSecret)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REDIS_URL")
	os.Unsetenv("JWT_SECRET")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing required vars, got nil")
	}
}

func TestConfig_Defaults(t *testing.T) {
	os.Setenv("REDIS_URL", "redis://localhost:6379")
	os.Setenv("JWT_SECRET", "test-secret")
	defer func() {
		os.Unsetenv("REDIS_URL")
		os.Unsetenv("JWT_SECRET")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.AppEnv != "development" {
		t.Errorf("expected default AppEnv 'development', got %s", cfg.AppEnv)
	}

	if cfg.AppPort != 8080 {
		t.Errorf("expected default AppPort 8080, got %d", cfg.AppPort)
	}

	if cfg.TokenTTL.Hours() != 24 {
		t.Errorf("expected default TokenTTL 24h, got %s", cfg.TokenTTL)
	}

	if !cfg.RateLimitLoginEnabled {
		t.Error("expected login rate limiting enabled by default")
	}
}

func TestConfig_GetCORSAllowedOrigins(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"empty", "", 0},
		{"single", "https://example.com", 1},
		{"multiple with spaces", "https://example.com, https://app.example.com", 2},
		{"trailing comma", "https://example.com,", 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := &Config{CORSAllowedOrigins: test.value}
			if got := cfg.GetCORSAllowedOrigins(); len(got) != test.want {
				t.Errorf("expected %d origins, got %d (%v)", test.want, len(got), got)
			}
		})
	}
}
