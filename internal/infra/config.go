package infra

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all application settings.
// Secrets are overridden from environment variables after loading.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	API struct {
		Binance struct {
			APIKey    string `yaml:"api_key"`
			APISecret string `yaml:"api_secret"`
			Testnet   bool   `yaml:"testnet"`
		} `yaml:"binance"`
	} `yaml:"api"`

	Web struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"web"`

	Logging struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"logging"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.App.Name = "binance-trading-bot"
	cfg.App.Version = "dev"
	cfg.API.Binance.Testnet = true
	cfg.Web.ListenAddr = "localhost:8080"
	cfg.Logging.Level = "info"
	cfg.Logging.File = "bot.log"
	overrideWithEnv(cfg)
	return cfg
}

// LoadConfig reads and parses the config file, then applies env overrides.
// A missing file is not an error: the defaults stand in.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	overrideWithEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if c.Web.ListenAddr == "" {
		return fmt.Errorf("web listen address is required")
	}
	if c.Logging.File == "" {
		return fmt.Errorf("log file path is required")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %s", c.Logging.Level)
	}
	return nil
}

// ResolveConfigPath finds config.yaml, preferring the working directory.
func ResolveConfigPath() string {
	local := "config.yaml"
	if _, err := os.Stat(local); err == nil {
		return local
	}
	return filepath.Join("configs", "config.yaml")
}

// overrideWithEnv applies environment variables over file values.
// Env always wins so keys can stay out of the config file.
func overrideWithEnv(cfg *Config) {
	if cfg.API.Binance.APIKey != "" || cfg.API.Binance.APISecret != "" {
		fmt.Println("⚠️  SECURITY WARNING: API secrets found in config file.")
		fmt.Println("   Recommendation: use BINANCE_API_KEY / BINANCE_API_SECRET instead.")
	}

	if key := os.Getenv("BINANCE_API_KEY"); key != "" {
		cfg.API.Binance.APIKey = key
	}
	if secret := os.Getenv("BINANCE_API_SECRET"); secret != "" {
		cfg.API.Binance.APISecret = secret
	}
}
