package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"binder/internal/config"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.StorePath != "data/binder.db" {
		t.Errorf("StorePath = %q, want data/binder.db", cfg.StorePath)
	}
}

func TestLoad_FileAndEnvOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binder.yml")
	content := "listen_addr: \":9999\"\nstore_path: /tmp/test.db\nsubmit_delay_ms: 250\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Setenv("BINDER_STORE_PATH", "/tmp/env.db")
	t.Setenv("BINDER_JWT_SECRET", "shh")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":9999" {
		t.Errorf("ListenAddr = %q, want :9999 from file", cfg.ListenAddr)
	}
	if cfg.StorePath != "/tmp/env.db" {
		t.Errorf("StorePath = %q, want the env override", cfg.StorePath)
	}
	if cfg.JWTSecret != "shh" {
		t.Errorf("JWTSecret = %q", cfg.JWTSecret)
	}
	if cfg.SubmitDelayMS != 250 {
		t.Errorf("SubmitDelayMS = %d, want 250", cfg.SubmitDelayMS)
	}
}

func TestValidate(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.JWTSecret = "secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"missing listen_addr", func(c *config.Config) { c.ListenAddr = "" }},
		{"missing store_path", func(c *config.Config) { c.StorePath = "" }},
		{"missing jwt_secret", func(c *config.Config) { c.JWTSecret = "" }},
		{"negative delay", func(c *config.Config) { c.SubmitDelayMS = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config.DefaultConfig()
			c.JWTSecret = "secret"
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
