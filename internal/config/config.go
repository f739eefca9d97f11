// Package config provides configuration loading for the CleanCV server.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug   bool          `yaml:"debug"`
	Server  ServerConfig  `yaml:"server"`
	Session SessionConfig `yaml:"session"`
	Render  RenderConfig  `yaml:"render"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// SessionConfig holds session lifetime settings.
type SessionConfig struct {
	TTLMinutes    int    `yaml:"ttl_minutes"`
	SweepSchedule string `yaml:"sweep_schedule"`
}

// RenderConfig holds print and QR settings.
type RenderConfig struct {
	ChromePath string `yaml:"chrome_path"`
	QRBaseURL  string `yaml:"qr_base_url"`
}

// Load reads the config file at path, applies defaults and environment
// overrides. A missing file is not an error; the server runs on defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	ApplyDefaults(cfg)
	applyEnv(cfg)
	return cfg, nil
}

// ApplyDefaults fills unset fields with working values.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Session.TTLMinutes == 0 {
		cfg.Session.TTLMinutes = 240
	}
	if cfg.Session.SweepSchedule == "" {
		cfg.Session.SweepSchedule = "@every 10m"
	}
}

// applyEnv honors the environment variables the service has always used.
func applyEnv(cfg *Config) {
	if p := os.Getenv("PORT"); p != "" {
		if port, err := strconv.Atoi(p); err == nil {
			cfg.Server.Port = port
		}
	}
	if p := os.Getenv("CHROME_PATH"); p != "" {
		cfg.Render.ChromePath = p
	}
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
