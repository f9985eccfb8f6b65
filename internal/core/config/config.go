// Package config handles configuration loading and validation for taskbee.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvToken is the environment variable that overrides the configured token.
const EnvToken = "TASKBEE_TOKEN"

// Config holds the application configuration.
type Config struct {
	// Token is the chat-platform access token. Unused by the console
	// transport; a real platform transport reads it at startup.
	Token   string        `yaml:"token"`
	Console ConsoleConfig `yaml:"console"`
}

// ConsoleConfig configures the local console transport.
type ConsoleConfig struct {
	// Sender is the handle attributed to messages typed into the console.
	Sender string `yaml:"sender"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Console: ConsoleConfig{
			Sender: "dev",
		},
	}
}

// Load reads configuration from the given path. A missing file is not an
// error; defaults are returned. TASKBEE_TOKEN overrides the file token.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if token := os.Getenv(EnvToken); token != "" {
		cfg.Token = token
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Console.Sender == "" {
		c.Console.Sender = "dev"
	}
}
