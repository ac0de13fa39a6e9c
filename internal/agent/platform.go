package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// PlatformClient talks to a hosted agent platform: the message and agent id
// are POSTed as JSON and the platform answers with an arbitrarily shaped
// envelope (often {success, response: {result|message}}). The envelope is
// decoded but not interpreted here; the extraction layer digs the payload out.
type PlatformClient struct {
	httpClient *http.Client
	baseURL    string
	agentID    string
}

func NewPlatformClient(baseURL, agentID string) *PlatformClient {
	return &PlatformClient{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		baseURL:    baseURL,
		agentID:    agentID,
	}
}

type platformRequest struct {
	Message string `json:"message"`
	AgentID string `json:"agent_id"`
}

func (c *PlatformClient) Invoke(ctx context.Context, message string) (any, error) {
	body, err := json.Marshal(platformRequest{Message: message, AgentID: c.agentID})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("agent call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("agent platform returned status %d", resp.StatusCode)
	}

	var envelope any
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode agent response: %w", err)
	}
	return envelope, nil
}
