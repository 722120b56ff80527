package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Runner    RunnerConfig    `yaml:"runner"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CatalogConfig selects where workouts.json comes from. An empty Source
// means the copy embedded in the binary.
type CatalogConfig struct {
	Source  string `yaml:"source"`
	DevMode bool   `yaml:"dev_mode"`
}

type RunnerConfig struct {
	TickInterval string `yaml:"tick_interval"`
}

// AuthConfig protects administrative endpoints. An empty APIKey disables them.
type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// Tick returns the parsed runner tick interval. Load has already validated it.
func (r RunnerConfig) Tick() time.Duration {
	d, _ := time.ParseDuration(r.TickInterval)
	return d
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server:    ServerConfig{Host: "0.0.0.0", Port: 8080},
		Runner:    RunnerConfig{TickInterval: "1s"},
		Tailscale: TailscaleConfig{Hostname: "workouts"},
	}
}

// Load reads config from a YAML file on top of Default, then applies
// environment variable overrides. An empty path skips the file.
// Env vars use the prefix WORKOUTGUIDE_ and underscore-separated paths:
//
//	WORKOUTGUIDE_SERVER_HOST, WORKOUTGUIDE_SERVER_PORT,
//	WORKOUTGUIDE_CATALOG_SOURCE, WORKOUTGUIDE_DEV_MODE,
//	WORKOUTGUIDE_TICK_INTERVAL, WORKOUTGUIDE_AUTH_API_KEY,
//	WORKOUTGUIDE_TS_ENABLED, WORKOUTGUIDE_TS_HOSTNAME
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WORKOUTGUIDE_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("WORKOUTGUIDE_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("WORKOUTGUIDE_CATALOG_SOURCE"); v != "" {
		cfg.Catalog.Source = v
	}
	if v := os.Getenv("WORKOUTGUIDE_DEV_MODE"); v != "" {
		if dev, err := strconv.ParseBool(v); err == nil {
			cfg.Catalog.DevMode = dev
		}
	}
	if v := os.Getenv("WORKOUTGUIDE_TICK_INTERVAL"); v != "" {
		cfg.Runner.TickInterval = v
	}
	if v := os.Getenv("WORKOUTGUIDE_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("WORKOUTGUIDE_TS_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Tailscale.Enabled = enabled
		}
	}
	if v := os.Getenv("WORKOUTGUIDE_TS_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	d, err := time.ParseDuration(c.Runner.TickInterval)
	if err != nil {
		return fmt.Errorf("runner.tick_interval: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("runner.tick_interval must be positive")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	return nil
}
