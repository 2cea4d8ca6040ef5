package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Arango.URL != "http://localhost:8529" {
		t.Errorf("Arango.URL = %q, want derived default", cfg.Arango.URL)
	}
	if cfg.JWT.LifetimeMinutes != 60 {
		t.Errorf("JWT.LifetimeMinutes = %d, want 60", cfg.JWT.LifetimeMinutes)
	}
	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Port)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ARANGO_HOST", "db.internal")
	t.Setenv("ARANGO_PORT", "9529")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_LIFETIME_MINUTES", "15")
	t.Setenv("MS_PORT", "8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Arango.URL != "http://db.internal:9529" {
		t.Errorf("Arango.URL = %q, want env-derived URL", cfg.Arango.URL)
	}
	if cfg.JWT.Secret != "test-secret" {
		t.Errorf("JWT.Secret = %q, want test-secret", cfg.JWT.Secret)
	}
	if cfg.JWT.LifetimeMinutes != 15 {
		t.Errorf("JWT.LifetimeMinutes = %d, want 15", cfg.JWT.LifetimeMinutes)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
}

func TestLoadInvalidLifetime(t *testing.T) {
	t.Setenv("JWT_LIFETIME_MINUTES", "zero")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric JWT_LIFETIME_MINUTES")
	}

	t.Setenv("JWT_LIFETIME_MINUTES", "-5")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative JWT_LIFETIME_MINUTES")
	}
}

func TestLoadYAMLFileWithEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("jwt:\n  secret: from-file\n  lifetime_minutes: 30\nport: \"4000\"\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("MS_PORT", "5000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.JWT.Secret != "from-file" {
		t.Errorf("JWT.Secret = %q, want from-file", cfg.JWT.Secret)
	}
	if cfg.JWT.LifetimeMinutes != 30 {
		t.Errorf("JWT.LifetimeMinutes = %d, want 30", cfg.JWT.LifetimeMinutes)
	}
	// Env wins over the file
	if cfg.Port != "5000" {
		t.Errorf("Port = %q, want 5000", cfg.Port)
	}
}
