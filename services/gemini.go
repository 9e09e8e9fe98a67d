package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SAI-KARTHIK999/SkinSey/middleware"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel   = "gemini-1.5-flash"

	// Applied when a 429 response carries no usable RetryInfo.
	defaultRetryDelay = 10 * time.Second
)

// RateLimitError signals the provider's "retry after N seconds" condition.
// It is the only error in the system a caller is allowed to retry on.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}

// Content is one role/parts turn in a Gemini conversation.
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type GenerationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float64 `json:"temperature,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
	TopK            int     `json:"topK,omitempty"`
}

// GeminiClient calls the generateContent endpoint.
type GeminiClient struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		APIKey:     apiKey,
		Model:      defaultGeminiModel,
		BaseURL:    defaultGeminiBaseURL,
		HTTPClient: ExternalHTTPClient,
	}
}

type geminiRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []Part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Details []struct {
			Type       string `json:"@type"`
			RetryDelay string `json:"retryDelay"`
		} `json:"details"`
	} `json:"error"`
}

// GenerateContent runs one completion. A 429 is returned as *RateLimitError
// with the provider-specified delay; every other failure is terminal.
func (c *GeminiClient) GenerateContent(ctx context.Context, contents []Content, cfg *GenerationConfig) (string, error) {
	payload, err := json.Marshal(geminiRequest{Contents: contents, GenerationConfig: cfg})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.BaseURL, c.Model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		middleware.TrackProviderCall("gemini", "error")
		return "", fmt.Errorf("text provider request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		middleware.TrackProviderCall("gemini", "error")
		return "", err
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		middleware.TrackProviderCall("gemini", "rate_limited")
		return "", &RateLimitError{RetryAfter: parseRetryDelay(body)}
	}

	if resp.StatusCode != http.StatusOK {
		middleware.TrackProviderCall("gemini", "error")
		return "", fmt.Errorf("text provider returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		middleware.TrackProviderCall("gemini", "error")
		return "", fmt.Errorf("text provider response decode failed: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		middleware.TrackProviderCall("gemini", "error")
		return "", fmt.Errorf("text provider returned no candidates")
	}

	var sb strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	middleware.TrackProviderCall("gemini", "ok")
	return sb.String(), nil
}

func parseRetryDelay(body []byte) time.Duration {
	var errResp geminiErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return defaultRetryDelay
	}
	for _, d := range errResp.Error.Details {
		if strings.Contains(d.Type, "RetryInfo") && d.RetryDelay != "" {
			if delay, err := time.ParseDuration(d.RetryDelay); err == nil && delay > 0 {
				return delay
			}
		}
	}
	return defaultRetryDelay
}
