// Package config loads and stores the dpl CLI configuration.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AuthKey      string        `yaml:"auth_key,omitempty"`
	ServerURL    string        `yaml:"server_url,omitempty"`
	Formality    string        `yaml:"formality,omitempty"`
	PollInterval string        `yaml:"poll_interval,omitempty"`
	Timeouts     TimeoutConfig `yaml:"timeouts,omitempty"`
}

// TimeoutConfig holds configurable timeout durations for various operations.
// All durations are specified as strings parseable by time.ParseDuration
// (e.g., "5m", "30s", "1h").
type TimeoutConfig struct {
	HTTP         string `yaml:"http,omitempty"`          // HTTP client timeout (default: 5m)
	DocumentWait string `yaml:"document_wait,omitempty"` // document translation wait (default: 30m)
}

const (
	// Environment variable names for configuration overrides
	EnvAuthKey   = "DEEPL_AUTH_KEY"
	EnvServerURL = "DEEPL_SERVER_URL"

	DefaultPollInterval = 3 * time.Second

	// Default timeout durations
	DefaultHTTPTimeout         = 5 * time.Minute
	DefaultDocumentWaitTimeout = 30 * time.Minute
)

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "dpl"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Load() (*Config, error) {
	cfg := &Config{}

	path, err := Path()
	if err != nil {
		// No resolvable home directory; env overrides still apply.
		return applyEnv(cfg), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return applyEnv(cfg), nil
}

// Environment variables take precedence over the config file.
func applyEnv(cfg *Config) *Config {
	if envKey := os.Getenv(EnvAuthKey); envKey != "" {
		cfg.AuthKey = envKey
	}
	if envURL := os.Getenv(EnvServerURL); envURL != "" {
		cfg.ServerURL = envURL
	}
	return cfg
}

func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	path, err := Path()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

func (c *Config) IsAuthenticated() bool {
	return c.AuthKey != ""
}

func (c *Config) SetAuthKey(key string) error {
	c.AuthKey = key
	return c.Save()
}

func (c *Config) ClearAuth() error {
	c.AuthKey = ""
	return c.Save()
}

// GetPollInterval returns the document status poll cadence.
func (c *Config) GetPollInterval() time.Duration {
	if c.PollInterval == "" {
		return DefaultPollInterval
	}
	parsed, err := time.ParseDuration(c.PollInterval)
	if err != nil || parsed <= 0 {
		return DefaultPollInterval
	}
	return parsed
}

// GetTimeout returns the configured timeout for the given operation, or the
// default if not set. Valid names: "http", "document_wait"
func (c *Config) GetTimeout(name string) time.Duration {
	var configValue string
	var defaultValue time.Duration

	switch name {
	case "http":
		configValue = c.Timeouts.HTTP
		defaultValue = DefaultHTTPTimeout
	case "document_wait":
		configValue = c.Timeouts.DocumentWait
		defaultValue = DefaultDocumentWaitTimeout
	default:
		return DefaultHTTPTimeout
	}

	if configValue == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(configValue)
	if err != nil {
		return defaultValue
	}
	return parsed
}
