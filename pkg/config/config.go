package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development" validate:"required"`

	Server struct {
		Port            int           `yaml:"port" default:"8089" validate:"gt=0,lte=65535"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"5s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	} `yaml:"server"`

	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`

	Logging struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error fatal panic"`
		Format string `yaml:"format" default:"console" validate:"oneof=json console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"logging"`

	// Store configures the optional fingerprint persistence layer.
	Store struct {
		Backend         string        `yaml:"backend" default:"memory" validate:"oneof=memory redis"`
		PerAddressLimit int           `yaml:"per_address_limit" default:"5" validate:"gt=0"`
		GlobalLimit     int           `yaml:"global_limit" default:"10000" validate:"gt=0"`
		TTL             time.Duration `yaml:"ttl" default:"168h"`
		Redis           struct {
			Addr     string `yaml:"addr" default:"localhost:6379"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix" default:"whalescope"`
		} `yaml:"redis"`
	} `yaml:"store"`

	// Addresses are the known-address universes consulted by the
	// pipeline. Empty lists fall back to the built-in mainnet sets;
	// tests inject synthetic universes instead of touching globals.
	Addresses struct {
		CEX        []string `yaml:"cex"`
		Bridges    []string `yaml:"bridges"`
		DEXRouters []string `yaml:"dex_routers"`
		Tokens     []string `yaml:"tokens"`
	} `yaml:"addresses"`

	Batch struct {
		InputDir   string `yaml:"input_dir" default:"./wallets"`
		OutputPath string `yaml:"output_path"`
	} `yaml:"batch"`
}

// Default returns a config populated with defaults only.
func Default() *Config {
	c := &Config{}
	_ = defaults.Set(c)
	return c
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	c := &Config{}
	if err := defaults.Set(c); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("STORE_BACKEND"); v != "" {
		c.Store.Backend = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Store.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Store.Redis.Password = v
	}
	if v := os.Getenv("WALLET_INPUT_DIR"); v != "" {
		c.Batch.InputDir = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks the configuration via struct tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
