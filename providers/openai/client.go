// Package openai talks to any OpenAI-compatible chat-completions endpoint.
// One attempt per call, no retries; the caller decides what a failure means.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/quailyquaily/datelog/llm"
)

const (
	DefaultEndpoint = "https://api.openai.com/v1"

	defaultTimeout          = 60 * time.Second
	defaultMaxResponseBytes = 4 << 20
)

type Client struct {
	Endpoint string
	APIKey   string

	// HTTP is replaceable for tests.
	HTTP *http.Client

	// MaxResponseBytes caps how much of a response body is read.
	MaxResponseBytes int64
}

func New(endpoint, apiKey string) *Client {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		Endpoint:         endpoint,
		APIKey:           apiKey,
		HTTP:             &http.Client{Timeout: defaultTimeout},
		MaxResponseBytes: defaultMaxResponseBytes,
	}
}

type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type wireResponse struct {
	Choices []struct {
		Message wireMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (c *Client) Chat(ctx context.Context, req llm.Request) (llm.Result, error) {
	start := time.Now()

	payload := map[string]any{
		"model": req.Model,
	}
	msgs := make([]wireMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, wireMessage{Role: m.Role, Content: m.Content})
	}
	payload["messages"] = msgs
	for k, v := range req.Parameters {
		payload[k] = v
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return llm.Result{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.Endpoint+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return llm.Result{}, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if strings.TrimSpace(c.APIKey) != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	client := c.HTTP
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return llm.Result{}, fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	limit := c.MaxResponseBytes
	if limit <= 0 {
		limit = defaultMaxResponseBytes
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return llm.Result{}, fmt.Errorf("read response: %w", err)
	}

	var parsed wireResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return llm.Result{}, fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return llm.Result{}, fmt.Errorf("chat failed (%d): %s", resp.StatusCode, parsed.Error.Message)
		}
		return llm.Result{}, fmt.Errorf("chat failed (%d)", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return llm.Result{}, fmt.Errorf("empty choices in response")
	}

	return llm.Result{
		Text: parsed.Choices[0].Message.Content,
		Usage: llm.Usage{
			InputTokens:  parsed.Usage.PromptTokens,
			OutputTokens: parsed.Usage.CompletionTokens,
			TotalTokens:  parsed.Usage.TotalTokens,
		},
		Duration: time.Since(start),
	}, nil
}
