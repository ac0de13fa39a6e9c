package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/leadarch/scout/internal/config"
)

// NewClient builds the agent client for the configured provider. "platform"
// targets a hosted agent endpoint; the rest call an LLM directly. Ollama is
// reached through its OpenAI-compatible API.
func NewClient(ctx context.Context, cfg config.AgentConfig) (Client, error) {
	provider := strings.ToLower(cfg.Provider)

	var client Client
	switch provider {
	case "platform":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("platform provider requires a base_url")
		}
		client = NewPlatformClient(cfg.BaseURL, cfg.AgentID)

	case "openai":
		client = NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL)

	case "gemini":
		c, err := NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		client = c

	case "claude":
		client = NewClaudeClient(cfg.APIKey, cfg.Model, cfg.BaseURL)

	case "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
		}

		// API key is ignored by Ollama but required by the client config.
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}
		client = NewOpenAIClient(apiKey, cfg.Model, baseURL)

	default:
		return nil, fmt.Errorf("unsupported agent provider: %s", cfg.Provider)
	}

	if cfg.RateLimit > 0 {
		client = NewLimitedClient(client, cfg.RateLimit)
	}
	return client, nil
}
