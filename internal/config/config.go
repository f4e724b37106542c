// Package config loads the Binder server configuration from an optional YAML
// file overlaid with BINDER_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the top-level server configuration, corresponding to binder.yml.
type Config struct {
	ListenAddr     string `yaml:"listen_addr" koanf:"listen_addr"`
	StorePath      string `yaml:"store_path" koanf:"store_path"`
	JWTSecret      string `yaml:"jwt_secret" koanf:"jwt_secret"`
	OpenAIAPIKey   string `yaml:"openai_api_key" koanf:"openai_api_key"`
	AllowedOrigins string `yaml:"allowed_origins" koanf:"allowed_origins"`

	// SubmitDelayMS is the artificial latency applied to login and code
	// generation, simulating the network round-trip the prototype had.
	SubmitDelayMS int `yaml:"submit_delay_ms" koanf:"submit_delay_ms"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:    ":8080",
		StorePath:     "data/binder.db",
		SubmitDelayMS: 0,
	}
}

// Load reads configuration from the given YAML file if it exists, then
// overlays environment variable overrides (BINDER_LISTEN_ADDR -> listen_addr).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("BINDER_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "BINDER_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr is required")
	}
	if c.StorePath == "" {
		return fmt.Errorf("store_path is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt_secret is required")
	}
	if c.SubmitDelayMS < 0 {
		return fmt.Errorf("submit_delay_ms must be non-negative")
	}
	return nil
}
