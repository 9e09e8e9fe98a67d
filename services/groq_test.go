package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCompleteVision(t *testing.T) {
	ctx := context.Background()

	t.Run("sends prompt and data-uri image", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("auth header = %q", got)
			}

			var req groqRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("bad request body: %v", err)
			}
			if len(req.Messages) != 1 || len(req.Messages[0].Content) != 2 {
				t.Fatalf("unexpected message shape: %+v", req.Messages)
			}
			if req.Messages[0].Content[0].Text != "analyze this" {
				t.Errorf("prompt = %q", req.Messages[0].Content[0].Text)
			}
			imgURL := req.Messages[0].Content[1].ImageURL.URL
			if !strings.HasPrefix(imgURL, "data:image/jpeg;base64,") {
				t.Errorf("image url = %q", imgURL)
			}

			json.NewEncoder(w).Encode(map[string]interface{}{
				"choices": []map[string]interface{}{
					{"message": map[string]string{"content": "===CONDITIONS==="}},
				},
			})
		}))
		defer server.Close()

		client := &VisionClient{
			APIKey:     "test-key",
			Model:      "test-model",
			BaseURL:    server.URL,
			HTTPClient: http.DefaultClient,
		}

		got, err := client.CompleteVision(ctx, "analyze this", "aW1hZ2U=")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "===CONDITIONS===" {
			t.Errorf("reply = %q", got)
		}
	})

	t.Run("non-200 fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := &VisionClient{APIKey: "k", Model: "m", BaseURL: server.URL, HTTPClient: http.DefaultClient}
		if _, err := client.CompleteVision(ctx, "p", "i"); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("no choices fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		client := &VisionClient{APIKey: "k", Model: "m", BaseURL: server.URL, HTTPClient: http.DefaultClient}
		if _, err := client.CompleteVision(ctx, "p", "i"); err == nil {
			t.Fatal("expected error for empty choices")
		}
	})
}
