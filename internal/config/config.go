// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port      int    `yaml:"port"`
	PublicURL string `yaml:"public_url"` // externally reachable base of this service
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type CashfreeConfig struct {
	AppID      string        `yaml:"app_id"`
	SecretKey  string        `yaml:"secret_key"`
	APIBase    string        `yaml:"api_base"`
	APIVersion string        `yaml:"api_version"`
	Timeout    time.Duration `yaml:"timeout"`
}

type FrontendConfig struct {
	BaseURL string `yaml:"base_url"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Cashfree CashfreeConfig `yaml:"cashfree"`
	Frontend FrontendConfig `yaml:"frontend"`
}

// LoadConfig reads an optional YAML file, then applies environment overrides
// and defaults. A missing file is fine; the service can run on env alone.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// env overrides: secrets and deploy-specific values live here
	if v := os.Getenv("CASHFREE_APP_ID"); v != "" {
		cfg.Cashfree.AppID = v
	}
	if v := os.Getenv("CASHFREE_SECRET_KEY"); v != "" {
		cfg.Cashfree.SecretKey = v
	}
	if v := os.Getenv("CASHFREE_API_BASE"); v != "" {
		cfg.Cashfree.APIBase = v
	}
	if v := os.Getenv("FRONTEND_BASE_URL"); v != "" {
		cfg.Frontend.BaseURL = v
	}
	if v := os.Getenv("PUBLIC_BASE_URL"); v != "" {
		cfg.Server.PublicURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Server.Port = p
	}

	// defaults
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Cashfree.APIBase == "" {
		cfg.Cashfree.APIBase = "https://api.cashfree.com"
	}
	if cfg.Cashfree.APIVersion == "" {
		cfg.Cashfree.APIVersion = "2022-09-01"
	}
	if cfg.Cashfree.Timeout <= 0 {
		cfg.Cashfree.Timeout = 15 * time.Second
	}
	if cfg.Frontend.BaseURL == "" {
		cfg.Frontend.BaseURL = "https://market-mind-hub.netlify.app"
	}
	if cfg.Server.PublicURL == "" {
		cfg.Server.PublicURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}

	// Credentials are deliberately not validated here: the service starts
	// without them (warning at startup) and create requests fail per-call.
	return &cfg, nil
}

// HasCredentials reports whether both Cashfree credentials are set.
func (c *CashfreeConfig) HasCredentials() bool {
	return c.AppID != "" && c.SecretKey != ""
}
