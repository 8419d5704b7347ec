// Package config loads the settings of the bot from YAML and the environment
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Model   Model   `yaml:"model"`
	Search  Search  `yaml:"search"`
	Server  Server  `yaml:"server"`
	Storage Storage `yaml:"storage"`
}

type Model struct {
	BaseURL        string        `yaml:"base_url"`
	APIKey         string        `yaml:"api_key"`
	Name           string        `yaml:"name"`
	Temperature    float64       `yaml:"temperature"`
	Reasoning      string        `yaml:"reasoning"`
	MaxAttempts    int           `yaml:"max_attempts"`
	AttemptTimeout time.Duration `yaml:"attempt_timeout"`
	Backoff        Backoff       `yaml:"backoff"`
}

type Backoff struct {
	Initial time.Duration `yaml:"initial"`
	Max     time.Duration `yaml:"max"`
	Jitter  float64       `yaml:"jitter"`
}

type Search struct {
	Endpoint string        `yaml:"endpoint"`
	APIKey   string        `yaml:"api_key"`
	Count    int           `yaml:"count"`
	Timeout  time.Duration `yaml:"timeout"`
}

type Server struct {
	Listen        string `yaml:"listen"`
	BotName       string `yaml:"bot_name"`
	HistoryWindow int    `yaml:"history_window"`
}

type Storage struct {
	// Driver is "file" or "postgres".
	Driver string `yaml:"driver"`
	Dir    string `yaml:"dir"`
	DSN    string `yaml:"dsn"`
}

// ConfigurationError reports a setting that must be present but is not.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s is not set", e.Field)
}

func Default() Config {
	return Config{
		Model: Model{
			BaseURL:        "http://127.0.0.1:11434/v1",
			Name:           "qwen3:1.7b",
			Temperature:    0.3,
			MaxAttempts:    5,
			AttemptTimeout: 60 * time.Second,
			Backoff:        Backoff{Initial: 500 * time.Millisecond, Max: 5 * time.Second, Jitter: 0.5},
		},
		Search: Search{
			Endpoint: "https://api.bochaai.com/v1/web-search",
			Count:    5,
			Timeout:  15 * time.Second,
		},
		Server: Server{
			Listen:        ":8080",
			BotName:       "sage",
			HistoryWindow: 20,
		},
		Storage: Storage{
			Driver: "file",
			Dir:    "rooms",
		},
	}
}

func GetEnv(name, fallback string) string {
	value, ok := os.LookupEnv(name)
	if ok {
		return value
	} else {
		return fallback
	}
}

// Load reads the YAML file at path on top of the defaults and applies the
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("could not read config: %w", err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("could not parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Model.BaseURL = GetEnv("OPENAI_URL", c.Model.BaseURL)
	c.Model.APIKey = GetEnv("OPENAI_API_KEY", c.Model.APIKey)
	c.Model.Name = GetEnv("OPENAI_MODEL", c.Model.Name)
	c.Search.Endpoint = GetEnv("SEARCH_URL", c.Search.Endpoint)
	c.Search.APIKey = GetEnv("SEARCH_API_KEY", c.Search.APIKey)
	c.Storage.DSN = GetEnv("DB_CONNECTION_STRING", c.Storage.DSN)
	if port := GetEnv("PORT", ""); port != "" {
		c.Server.Listen = ":" + port
	}
}

// Validate checks the settings the model client cannot work without.
func (m Model) Validate() error {
	if m.BaseURL == "" {
		return &ConfigurationError{Field: "model.base_url"}
	}
	if m.Name == "" {
		return &ConfigurationError{Field: "model.name"}
	}
	if m.MaxAttempts < 0 {
		return fmt.Errorf("model.max_attempts must not be negative")
	}
	return nil
}

func (s Storage) Validate() error {
	switch s.Driver {
	case "", "file":
		if s.Dir == "" {
			return &ConfigurationError{Field: "storage.dir"}
		}
	case "postgres":
		if s.DSN == "" {
			return &ConfigurationError{Field: "storage.dsn"}
		}
	default:
		return fmt.Errorf("unknown storage driver %q", s.Driver)
	}
	return nil
}
