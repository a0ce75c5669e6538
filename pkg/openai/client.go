// Package openai is a minimal client for the two OpenAI endpoints the
// pipeline needs: chat completions and speech synthesis.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultBaseURL is the production OpenAI API endpoint
const DefaultBaseURL = "https://api.openai.com/v1"

// Client calls the OpenAI HTTP API with bearer authentication
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the production API
func NewClient(apiKey string) *Client {
	return NewClientWithBaseURL(apiKey, DefaultBaseURL)
}

// NewClientWithBaseURL creates a client against a custom endpoint.
// Used by tests to point at a mock server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		// No request timeout: completion and speech calls are bounded
		// only by the caller's context
		httpClient: &http.Client{},
	}
}

// ChatMessage is a single message in a chat completion request
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest is the payload for the chat completions endpoint
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	TopP        float64       `json:"top_p,omitempty"`
}

// ChatCompletionResponse is the subset of the response the pipeline reads
type ChatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

// SpeechRequest is the payload for the speech synthesis endpoint
type SpeechRequest struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	Voice          string `json:"voice"`
	ResponseFormat string `json:"response_format,omitempty"`
}

// CreateChatCompletion calls the chat completions endpoint and returns the
// parsed response
func (c *Client) CreateChatCompletion(ctx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error) {
	respBody, err := c.post(ctx, "/chat/completions", req)
	if err != nil {
		return nil, err
	}
	defer respBody.Close()

	var completion ChatCompletionResponse
	if err := json.NewDecoder(respBody).Decode(&completion); err != nil {
		return nil, fmt.Errorf("failed to decode completion response: %w", err)
	}

	return &completion, nil
}

// CreateSpeech calls the speech endpoint and returns the audio stream.
// The caller owns the returned body and must close it.
func (c *Client) CreateSpeech(ctx context.Context, req SpeechRequest) (io.ReadCloser, error) {
	return c.post(ctx, "/audio/speech", req)
}

// post sends a JSON POST and returns the response body on 200, or an error
// carrying the status and body text otherwise
func (c *Client) post(ctx context.Context, endpoint string, payload interface{}) (io.ReadCloser, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openai error %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return resp.Body, nil
}
