// Package ai calls the downstream OpenAI-compatible completion endpoint.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aichat/backend/internal/models/dto"
)

const (
	defaultMaxTokens   = 1000
	defaultTemperature = 0.7
)

// Client forwards chat requests to a completion model server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL, e.g.
// "http://localhost:1234/v1".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Complete posts the chat request to <base>/chat/completions and returns
// the upstream status code and raw JSON body. Zero-valued max_tokens and
// temperature are filled with the model defaults before forwarding.
func (c *Client) Complete(ctx context.Context, req dto.ChatRequest) (int, []byte, error) {
	if req.MaxTokens == 0 {
		req.MaxTokens = defaultMaxTokens
	}
	if req.Temperature == 0 {
		req.Temperature = defaultTemperature
	}

	body, err := json.Marshal(req)
	if err != nil {
		return 0, nil, fmt.Errorf("marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("build completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("call completion model: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read completion response: %w", err)
	}
	return resp.StatusCode, respBody, nil
}
