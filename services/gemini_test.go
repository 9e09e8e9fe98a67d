package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testGeminiClient(serverURL string) *GeminiClient {
	return &GeminiClient{
		APIKey:     "test-key",
		Model:      "test-model",
		BaseURL:    serverURL,
		HTTPClient: http.DefaultClient,
	}
}

func TestGenerateContent(t *testing.T) {
	ctx := context.Background()

	t.Run("success joins candidate parts", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req geminiRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("bad request body: %v", err)
			}
			if len(req.Contents) == 0 {
				t.Error("no contents sent")
			}

			json.NewEncoder(w).Encode(map[string]interface{}{
				"candidates": []map[string]interface{}{
					{"content": map[string]interface{}{
						"parts": []map[string]string{
							{"text": "hello "},
							{"text": "there"},
						},
					}},
				},
			})
		}))
		defer server.Close()

		client := testGeminiClient(server.URL)
		got, err := client.GenerateContent(ctx,
			[]Content{{Role: "user", Parts: []Part{{Text: "hi"}}}}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "hello there" {
			t.Errorf("reply = %q", got)
		}
	})

	t.Run("429 with RetryInfo yields typed error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"code":429,"message":"quota",
				"details":[{"@type":"type.googleapis.com/google.rpc.RetryInfo","retryDelay":"7s"}]}}`))
		}))
		defer server.Close()

		client := testGeminiClient(server.URL)
		_, err := client.GenerateContent(ctx, nil, nil)

		var rateErr *RateLimitError
		if !errors.As(err, &rateErr) {
			t.Fatalf("expected *RateLimitError, got %v", err)
		}
		if rateErr.RetryAfter != 7*time.Second {
			t.Errorf("retryAfter = %s, want 7s", rateErr.RetryAfter)
		}
	})

	t.Run("429 without RetryInfo uses default delay", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"code":429,"message":"quota"}}`))
		}))
		defer server.Close()

		client := testGeminiClient(server.URL)
		_, err := client.GenerateContent(ctx, nil, nil)

		var rateErr *RateLimitError
		if !errors.As(err, &rateErr) {
			t.Fatalf("expected *RateLimitError, got %v", err)
		}
		if rateErr.RetryAfter != defaultRetryDelay {
			t.Errorf("retryAfter = %s, want default %s", rateErr.RetryAfter, defaultRetryDelay)
		}
	})

	t.Run("server error is not a rate limit", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := testGeminiClient(server.URL)
		_, err := client.GenerateContent(ctx, nil, nil)
		if err == nil {
			t.Fatal("expected error")
		}
		var rateErr *RateLimitError
		if errors.As(err, &rateErr) {
			t.Error("500 should not map to RateLimitError")
		}
	})

	t.Run("empty candidates fail", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		}))
		defer server.Close()

		client := testGeminiClient(server.URL)
		if _, err := client.GenerateContent(ctx, nil, nil); err == nil {
			t.Fatal("expected error for empty candidates")
		}
	})
}

func TestParseRetryDelay(t *testing.T) {
	t.Run("garbage body", func(t *testing.T) {
		if d := parseRetryDelay([]byte("not json")); d != defaultRetryDelay {
			t.Errorf("delay = %s, want default", d)
		}
	})
	t.Run("zero delay ignored", func(t *testing.T) {
		body := []byte(`{"error":{"details":[{"@type":"RetryInfo","retryDelay":"0s"}]}}`)
		if d := parseRetryDelay(body); d != defaultRetryDelay {
			t.Errorf("delay = %s, want default", d)
		}
	})
}
