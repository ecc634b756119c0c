package config

import (
	"strings"
	"testing"
	"time"
)

func productionConfig() *Config {
	return &Config{
		Environment:          EnvProduction,
		SessionAuthKey:       strings.Repeat("a", 32),
		SessionEncryptionKey: strings.Repeat("b", 16),
		LogLevel:             "info",
		TimeZone:             "Asia/Taipei",
		SMTPFrom:             "planner@example.com",
		CORSAllowedOrigins:   "https://wardrobe.example.com",
	}
}

func TestValidateForProduction(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"short auth key", func(c *Config) { c.SessionAuthKey = "short" }, "SESSION_AUTH_KEY"},
		{"short encryption key", func(c *Config) { c.SessionEncryptionKey = "short" }, "SESSION_ENCRYPTION_KEY"},
		{"debug logging", func(c *Config) { c.LogLevel = "debug" }, "LOG_LEVEL"},
		{"unknown zone", func(c *Config) { c.TimeZone = "Mars/Olympus" }, "TIME_ZONE"},
		{"wildcard cors", func(c *Config) { c.CORSAllowedOrigins = " * " }, "CORS_ALLOWED_ORIGINS"},
		{"bad sender", func(c *Config) { c.SMTPFrom = "not an address" }, "SMTP_FROM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := productionConfig()
			tt.mutate(cfg)
			err := ValidateForProduction(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %s, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateForProduction_SkipsOtherEnvironments(t *testing.T) {
	cfg := &Config{Environment: EnvDevelopment, LogLevel: "debug"}
	if err := ValidateForProduction(cfg); err != nil {
		t.Fatalf("expected nil outside production, got %v", err)
	}
}

func TestLocation(t *testing.T) {
	if got := (&Config{}).Location(); got != time.UTC {
		t.Fatalf("empty zone: expected UTC, got %v", got)
	}
	if got := (&Config{TimeZone: "Nowhere/Special"}).Location(); got != time.UTC {
		t.Fatalf("unknown zone: expected UTC, got %v", got)
	}
	if got := (&Config{TimeZone: "Asia/Taipei"}).Location(); got.String() != "Asia/Taipei" {
		t.Fatalf("expected Asia/Taipei, got %v", got)
	}
}

func TestSMTPEnabled(t *testing.T) {
	if (&Config{SMTPHost: "smtp.example.com"}).SMTPEnabled() {
		t.Fatal("expected disabled without sender")
	}
	if !(&Config{SMTPHost: "smtp.example.com", SMTPFrom: "a@example.com"}).SMTPEnabled() {
		t.Fatal("expected enabled with host and sender")
	}
}
