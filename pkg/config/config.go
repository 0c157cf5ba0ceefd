package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Dashboard struct {
		// Source selects the metric source backing the dashboard:
		// "backend", "clickhouse", or "demo".
		Source          string        `yaml:"source"`
		APIBaseURL      string        `yaml:"api_base_url"`
		PollingInterval time.Duration `yaml:"polling_interval"`
		CacheDuration   time.Duration `yaml:"cache_duration"`
		DefaultWindow   int           `yaml:"default_window_days"`
		AssetUniverse   int           `yaml:"asset_universe"`
	} `yaml:"dashboard"`
	ClickHouse struct {
		Host             string        `yaml:"host"`
		Port             int           `yaml:"port"`
		Database         string        `yaml:"database"`
		User             string        `yaml:"user"`
		Password         string        `yaml:"password"`
		DialTimeout      time.Duration `yaml:"dial_timeout"`
		ReadTimeout      time.Duration `yaml:"read_timeout"`
		WriteTimeout     time.Duration `yaml:"write_timeout"`
		MaxExecutionTime time.Duration `yaml:"max_execution_time"`
	} `yaml:"clickhouse"`
	Postgres struct {
		DSN string `yaml:"dsn"`
	} `yaml:"postgres"`
	History struct {
		Path string `yaml:"path"`
	} `yaml:"history"`
	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Kafka struct {
		Enabled      bool     `yaml:"enabled"`
		Brokers      []string `yaml:"brokers"`
		Topic        string   `yaml:"topic"`
		RequiredAcks int      `yaml:"required_acks"`
		Compression  string   `yaml:"compression"`
	} `yaml:"kafka"`
	Binance struct {
		Enabled bool     `yaml:"enabled"`
		Symbols []string `yaml:"symbols"`
	} `yaml:"binance"`
	OpenAI struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"openai"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("TRENDMATRIX_SOURCE"); v != "" {
		c.Dashboard.Source = v
	}
	if v := os.Getenv("TRENDMATRIX_API_BASE_URL"); v != "" {
		c.Dashboard.APIBaseURL = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		c.Postgres.DSN = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv("BINANCE_SYMBOLS"); v != "" {
		c.Binance.Symbols = strings.Split(v, ",")
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	switch c.Dashboard.Source {
	case "backend", "clickhouse", "demo":
	case "":
		return fmt.Errorf("dashboard.source is required")
	default:
		return fmt.Errorf("dashboard.source must be 'backend', 'clickhouse' or 'demo', got '%s'", c.Dashboard.Source)
	}
	if c.Dashboard.Source == "backend" && c.Dashboard.APIBaseURL == "" {
		return fmt.Errorf("dashboard.api_base_url is required for backend source")
	}
	if c.Dashboard.DefaultWindow <= 0 {
		return fmt.Errorf("dashboard.default_window_days must be positive")
	}
	return nil
}
