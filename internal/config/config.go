package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type AgentConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
	AgentID  string `toml:"agent_id"`
	// Invocations per second allowed against the agent; 0 disables limiting.
	RateLimit float64 `toml:"rate_limit"`
}

type StorageConfig struct {
	Path string `toml:"path"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type PromptConfig struct {
	Discover string `toml:"discover"`
}

type Config struct {
	Agent   AgentConfig   `toml:"agent"`
	Storage StorageConfig `toml:"storage"`
	Server  ServerConfig  `toml:"server"`
	Prompts PromptConfig  `toml:"prompts"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Agent:   AgentConfig{Provider: "platform"},
		Storage: StorageConfig{Path: "scout.db"},
		Server:  ServerConfig{Port: "8080"},
	}
}

// ApplyEnv layers environment overrides on top of the loaded file.
func (c *Config) ApplyEnv() {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.Agent.Provider, "AGENT_PROVIDER")
	set(&c.Agent.Model, "AGENT_MODEL")
	set(&c.Agent.APIKey, "AGENT_API_KEY")
	set(&c.Agent.BaseURL, "AGENT_BASE_URL")
	set(&c.Agent.AgentID, "AGENT_ID")
	set(&c.Storage.Path, "STORAGE_PATH")
	set(&c.Server.Port, "PORT")
}
