// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/content-engine/internal/httputil"
	"github.com/pdiddy/content-engine/pkg/types"
)

// groqAPIURL is the Groq chat completions endpoint. Package-level var for
// test substitution.
var groqAPIURL = "https://api.groq.com/openai/v1/chat/completions"

const (
	defaultGroqModel  = "llama-3.3-70b-versatile"
	groqMaxTokens     = 6024
	defaultMaxRetries = 3
)

// GroqBackend calls the Groq chat completions API for plain-text generation.
type GroqBackend struct {
	APIKey     string
	Model      string
	MaxRetries int
	Client     *http.Client
}

// NewGroqBackend builds a Groq backend from config. It fails fast with
// ErrMissingCredential when no API key is configured.
func NewGroqBackend(cfg types.AIConfig, client *http.Client) (*GroqBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq: %w", ErrMissingCredential)
	}
	model := cfg.Model
	if model == "" {
		model = defaultGroqModel
	}
	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = defaultMaxRetries
	}
	return &GroqBackend{APIKey: cfg.APIKey, Model: model, MaxRetries: retries, Client: client}, nil
}

// groqRequest is the request body for the chat completions API.
type groqRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	TopP        float64       `json:"top_p"`
	Stream      bool          `json:"stream"`
}

// chatMessage is a single turn in the chat completion conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// groqResponse is the response body from the chat completions API.
type groqResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate sends an optional system turn plus one user turn and returns the
// generated text.
func (b *GroqBackend) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	messages := make([]chatMessage, 0, 2)
	if req.SystemMessage != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.SystemMessage})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	body := groqRequest{
		Model:       b.Model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   groqMaxTokens,
		TopP:        1,
	}

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, groqAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+b.APIKey)

	resp, err := httputil.DoWithRetry(ctx, b.Client, httpReq, b.MaxRetries, nil)
	if err != nil {
		return "", fmt.Errorf("calling Groq API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Groq API returned %d: %s", resp.StatusCode, string(respBody))
	}

	var gResp groqResponse
	if err := json.NewDecoder(resp.Body).Decode(&gResp); err != nil {
		return "", fmt.Errorf("decoding Groq response: %w", err)
	}

	if len(gResp.Choices) == 0 {
		return "", fmt.Errorf("Groq API returned no choices")
	}

	return gResp.Choices[0].Message.Content, nil
}
