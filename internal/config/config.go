package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `yaml:"server" toml:"server"`
	API     APIConfig     `yaml:"api" toml:"api"`
	Storage StorageConfig `yaml:"storage" toml:"storage"`
	Cache   CacheConfig   `yaml:"cache" toml:"cache"`
	Log     LogConfig     `yaml:"log" toml:"log"`
}

// ServerConfig holds the local web front configuration
type ServerConfig struct {
	Host string `yaml:"host" toml:"host"`
	Port int    `yaml:"port" toml:"port"`
}

// APIConfig holds the remote auction API configuration
type APIConfig struct {
	BaseURL string        `yaml:"base_url" toml:"base_url"`
	APIKey  string        `yaml:"api_key" toml:"api_key"`
	Timeout time.Duration `yaml:"timeout" toml:"timeout"`
}

// StorageConfig holds where the session is persisted. An empty path keeps it in memory.
type StorageConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// CacheConfig holds the seller stats cache configuration
type CacheConfig struct {
	StatsSize int           `yaml:"stats_size" toml:"stats_size"`
	StatsTTL  time.Duration `yaml:"stats_ttl" toml:"stats_ttl"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Server:  ServerConfig{Host: "127.0.0.1", Port: 8080},
		API:     APIConfig{BaseURL: "https://v2.api.noroff.dev", Timeout: 15 * time.Second},
		Storage: StorageConfig{Path: "session.json"},
		Cache:   CacheConfig{StatsSize: 128, StatsTTL: time.Minute},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads configuration from a YAML or TOML file (chosen by extension) on top of the
// defaults, then applies environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := decode(path, data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
	case ".yaml", ".yml", "":
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("AUCTION_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("AUCTION_API_KEY"); v != "" {
		cfg.API.APIKey = v
	}
	if v := os.Getenv("AUCTION_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	return nil
}

// Validate checks the fields the client cannot run without
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("config: api base_url is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid server port %d", c.Server.Port)
	}
	if c.Cache.StatsSize <= 0 {
		return fmt.Errorf("config: invalid stats cache size %d", c.Cache.StatsSize)
	}
	return nil
}

// Addr returns the listen address of the local web front
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
