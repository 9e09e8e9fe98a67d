package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/SAI-KARTHIK999/SkinSey/middleware"
)

const (
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	defaultVisionModel = "meta-llama/llama-4-maverick-17b-128e-instruct"
)

// VisionClient calls the Groq chat-completions API with an image attached.
type VisionClient struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

func NewVisionClient(apiKey string) *VisionClient {
	return &VisionClient{
		APIKey:     apiKey,
		Model:      defaultVisionModel,
		BaseURL:    defaultGroqBaseURL,
		HTTPClient: ExternalHTTPClient,
	}
}

type groqContentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *groqImageURL `json:"image_url,omitempty"`
}

type groqImageURL struct {
	URL string `json:"url"`
}

type groqMessage struct {
	Role    string            `json:"role"`
	Content []groqContentPart `json:"content"`
}

type groqRequest struct {
	Model     string        `json:"model"`
	Messages  []groqMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type groqResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// CompleteVision sends the prompt plus a base64 JPEG and returns the raw
// model text. The caller owns parsing and any retry policy.
func (c *VisionClient) CompleteVision(ctx context.Context, prompt, imageB64 string) (string, error) {
	reqBody := groqRequest{
		Model: c.Model,
		Messages: []groqMessage{
			{
				Role: "user",
				Content: []groqContentPart{
					{Type: "text", Text: prompt},
					{
						Type:     "image_url",
						ImageURL: &groqImageURL{URL: "data:image/jpeg;base64," + imageB64},
					},
				},
			},
		},
		MaxTokens: 1024,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		middleware.TrackProviderCall("groq", "error")
		return "", fmt.Errorf("vision provider request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		middleware.TrackProviderCall("groq", "error")
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		middleware.TrackProviderCall("groq", "error")
		return "", fmt.Errorf("vision provider returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed groqResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		middleware.TrackProviderCall("groq", "error")
		return "", fmt.Errorf("vision provider response decode failed: %w", err)
	}

	if len(parsed.Choices) == 0 {
		middleware.TrackProviderCall("groq", "error")
		return "", fmt.Errorf("vision provider returned no choices")
	}

	middleware.TrackProviderCall("groq", "ok")
	return parsed.Choices[0].Message.Content, nil
}
