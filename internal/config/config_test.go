package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig without file: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Storage.DataDir != "data" {
		t.Errorf("Storage.DataDir = %q, want data", cfg.Storage.DataDir)
	}
	if cfg.SessionTokenExpiration() != 12*time.Hour {
		t.Errorf("SessionTokenExpiration() = %v, want 12h", cfg.SessionTokenExpiration())
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  port: \"9090\"\nstorage:\n  data_dir: /tmp/records\njwt:\n  session_token_expiration: 1h\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Storage.DataDir != "/tmp/records" {
		t.Errorf("Storage.DataDir = %q, want /tmp/records", cfg.Storage.DataDir)
	}
	if cfg.SessionTokenExpiration() != time.Hour {
		t.Errorf("SessionTokenExpiration() = %v, want 1h", cfg.SessionTokenExpiration())
	}
	// Keys the file omits keep their defaults
	if cfg.Server.Mode != "development" {
		t.Errorf("Server.Mode = %q, want development", cfg.Server.Mode)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("STORAGE_DATA_DIR", "/var/lib/coursereg")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "7070" {
		t.Errorf("Server.Port = %q, want env override 7070", cfg.Server.Port)
	}
	if cfg.Storage.DataDir != "/var/lib/coursereg" {
		t.Errorf("Storage.DataDir = %q, want env override", cfg.Storage.DataDir)
	}
}

func TestLoadConfigRejectsBadExpiration(t *testing.T) {
	t.Setenv("JWT_SESSION_TOKEN_EXPIRATION", "not-a-duration")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("LoadConfig accepted unparseable session token expiration")
	}
}
