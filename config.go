package natureos

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds client settings loadable from a YAML file. Zero-value fields
// are ignored when applied, so a file only needs the settings it overrides.
type Config struct {
	APIURL         string `yaml:"api_url"`
	APIKey         string `yaml:"api_key"`
	TenantID       string `yaml:"tenant_id"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaxRetries     int    `yaml:"max_retries"`
}

// LoadConfig reads a client configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// WithConfig applies the non-zero settings of cfg to the client.
func WithConfig(cfg *Config) Option {
	return func(c *Client) {
		if cfg == nil {
			return
		}
		if cfg.APIURL != "" {
			c.baseURL = cfg.APIURL
		}
		if cfg.APIKey != "" {
			c.apiKey = cfg.APIKey
		}
		if cfg.TenantID != "" {
			c.tenantID = cfg.TenantID
		}
		if cfg.TimeoutSeconds > 0 {
			c.timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
		}
		if cfg.MaxRetries > 0 {
			WithMaxRetries(cfg.MaxRetries)(c)
		}
	}
}
