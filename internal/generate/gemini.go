// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pdiddy/content-engine/internal/httputil"
	"github.com/pdiddy/content-engine/pkg/types"
)

// geminiAPIBase is the Gemini API base URL. Package-level var for test
// substitution.
var geminiAPIBase = "https://generativelanguage.googleapis.com/v1beta"

const defaultGeminiModel = "gemini-2.0-flash-exp"

// GeminiBackend calls the Gemini generateContent API in JSON mode.
type GeminiBackend struct {
	APIKey     string
	Model      string
	MaxRetries int
	Client     *http.Client
}

// NewGeminiBackend builds a Gemini backend from config. It fails fast with
// ErrMissingCredential when no API key is configured.
func NewGeminiBackend(cfg types.AIConfig, client *http.Client) (*GeminiBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: %w", ErrMissingCredential)
	}
	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = defaultMaxRetries
	}
	return &GeminiBackend{APIKey: cfg.APIKey, Model: model, MaxRetries: retries, Client: client}, nil
}

// Gemini generateContent API JSON structures.
type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"topP"`
	TopK             int     `json:"topK"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateStructured requests JSON-formatted output and parses it into an
// Artifact. Transport and API failures return an error. Model output that is
// not valid JSON is a recoverable degradation, not an error: the returned
// artifact carries the raw text in TextResponse with JSONParseError set.
func (b *GeminiBackend) GenerateStructured(ctx context.Context, prompt string, temperature float64) (types.Artifact, error) {
	body := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenConfig{
			Temperature:      temperature,
			TopP:             0.95,
			TopK:             40,
			MaxOutputTokens:  8192,
			ResponseMimeType: "application/json",
		},
	}

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return types.Artifact{}, fmt.Errorf("marshaling request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		geminiAPIBase, b.Model, url.QueryEscape(b.APIKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return types.Artifact{}, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httputil.DoWithRetry(ctx, b.Client, httpReq, b.MaxRetries, nil)
	if err != nil {
		return types.Artifact{}, fmt.Errorf("calling Gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return types.Artifact{}, fmt.Errorf("Gemini API returned %d: %s", resp.StatusCode, string(respBody))
	}

	var gResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gResp); err != nil {
		return types.Artifact{}, fmt.Errorf("decoding Gemini response: %w", err)
	}

	if len(gResp.Candidates) == 0 || len(gResp.Candidates[0].Content.Parts) == 0 {
		return types.Artifact{}, fmt.Errorf("Gemini API returned no candidates")
	}

	text := gResp.Candidates[0].Content.Parts[0].Text

	var artifact types.Artifact
	if err := json.Unmarshal([]byte(text), &artifact); err != nil {
		return types.Artifact{TextResponse: text, JSONParseError: "true"}, nil
	}
	return artifact, nil
}
