package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadarch/scout/internal/config"
)

func TestNewClientUnsupportedProvider(t *testing.T) {
	_, err := NewClient(context.Background(), config.AgentConfig{Provider: "carrier-pigeon"})
	assert.Error(t, err)
}

func TestNewClientPlatformRequiresBaseURL(t *testing.T) {
	_, err := NewClient(context.Background(), config.AgentConfig{Provider: "platform"})
	assert.Error(t, err)
}

func TestNewClientBuildsProviders(t *testing.T) {
	cases := []config.AgentConfig{
		{Provider: "platform", BaseURL: "http://localhost:9000/agents"},
		{Provider: "openai", APIKey: "k", Model: "gpt-4o"},
		{Provider: "claude", APIKey: "k", Model: "claude-3"},
		{Provider: "ollama", Model: "llama3"},
	}

	for _, cfg := range cases {
		t.Run(cfg.Provider, func(t *testing.T) {
			client, err := NewClient(context.Background(), cfg)
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestNewClientWrapsWithRateLimiter(t *testing.T) {
	client, err := NewClient(context.Background(), config.AgentConfig{
		Provider:  "ollama",
		Model:     "llama3",
		RateLimit: 2,
	})

	require.NoError(t, err)
	_, limited := client.(*LimitedClient)
	assert.True(t, limited)
}

func TestLimitedClientDelegates(t *testing.T) {
	inner := &MockClient{Payload: "ok"}
	client := NewLimitedClient(inner, 100)

	payload, err := client.Invoke(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, "ok", payload)
	assert.Equal(t, 1, inner.Calls)
}
