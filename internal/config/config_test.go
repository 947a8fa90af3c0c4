package config

import (
	"strings"
	"testing"
)

func TestInsecureDefaultsDetection(t *testing.T) {
	cfg := Config{
		SecretKey:     DefaultSecretKey,
		AdminPassword: DefaultAdminPassword,
	}
	if got := len(cfg.InsecureDefaults()); got != 2 {
		t.Fatalf("expected 2 insecure defaults, got %d", got)
	}

	cfg.SecretKey = "rotated-secret"
	cfg.AdminPassword = "rotated-password"
	if got := len(cfg.InsecureDefaults()); got != 0 {
		t.Fatalf("expected no insecure defaults after rotation, got %d", got)
	}
}

func TestValidateRejectsProductionDefaults(t *testing.T) {
	cfg := Config{
		Environment:   "production",
		SecretKey:     DefaultSecretKey,
		AdminPassword: DefaultAdminPassword,
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected production validation to fail with default secrets")
	}
	if !strings.Contains(err.Error(), "SECRET_KEY") {
		t.Fatalf("expected error to name SECRET_KEY, got %v", err)
	}
}

func TestValidateAllowsDevelopmentDefaults(t *testing.T) {
	cfg := Config{
		Environment:   "development",
		SecretKey:     DefaultSecretKey,
		AdminPassword: DefaultAdminPassword,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected development to tolerate defaults, got %v", err)
	}
}

func TestValidateAllowsHardenedProduction(t *testing.T) {
	cfg := Config{
		Environment:   "production",
		SecretKey:     "long-random-signing-secret",
		AdminPassword: "operator-chosen-password",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected hardened production config to pass, got %v", err)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("ADMIN_USERNAME", "operator")
	t.Setenv("ADMIN_PASSWORD", "operator-password")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != "9191" {
		t.Fatalf("expected PORT override, got %q", cfg.Port)
	}
	if cfg.SecretKey != "env-secret" {
		t.Fatalf("expected SECRET_KEY override, got %q", cfg.SecretKey)
	}
	if cfg.AdminUsername != "operator" || cfg.AdminPassword != "operator-password" {
		t.Fatalf("expected super-admin pair override, got %q/%q", cfg.AdminUsername, cfg.AdminPassword)
	}
}
