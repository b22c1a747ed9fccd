// Package retell is a minimal client for the Retell AI voice-agent API,
// covering only the create-web-call operation the portal's talk widget needs.
package retell

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const createWebCallPath = "/v2/create-web-call"

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the Retell API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPClient
}

// NewClient creates a Retell client. baseURL defaults to the public API when
// empty; httpClient should carry the caller's timeout policy.
func NewClient(apiKey, baseURL string, httpClient HTTPClient) *Client {
	if baseURL == "" {
		baseURL = "https://api.retellai.com"
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// WebCall is the response to a create-web-call request. The access token is
// short-lived; the browser call must start within seconds of creation.
type WebCall struct {
	AccessToken string `json:"access_token"`
	CallID      string `json:"call_id"`
	AgentName   string `json:"agent_name"`
}

type createWebCallRequest struct {
	AgentID string `json:"agent_id"`
}

// CreateWebCall registers a web call session for the given agent.
func (c *Client) CreateWebCall(ctx context.Context, agentID string) (*WebCall, error) {
	body, err := json.Marshal(createWebCallRequest{AgentID: agentID})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+createWebCallPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create web call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Limit how much of an upstream error body reaches logs.
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("create web call: status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var call WebCall
	if err := json.NewDecoder(resp.Body).Decode(&call); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &call, nil
}
