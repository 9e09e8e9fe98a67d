package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SAI-KARTHIK999/SkinSey/dto"
	"github.com/SAI-KARTHIK999/SkinSey/services"
)

type fakeTextCompleter struct {
	calls     int
	responses []string
	errs      []error
	lastSent  []services.Content
}

func (f *fakeTextCompleter) GenerateContent(ctx context.Context, contents []services.Content, cfg *services.GenerationConfig) (string, error) {
	f.lastSent = contents
	idx := f.calls
	f.calls++
	if idx < len(f.errs) && f.errs[idx] != nil {
		return "", f.errs[idx]
	}
	if idx < len(f.responses) {
		return f.responses[idx], nil
	}
	return "", errors.New("no scripted response")
}

func TestChat(t *testing.T) {
	ctx := context.Background()

	t.Run("success on first attempt", func(t *testing.T) {
		fake := &fakeTextCompleter{responses: []string{"use sunscreen daily"}}
		svc := NewChatService(fake)

		reply, err := svc.Chat(ctx, "how do I protect my skin?", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply != "use sunscreen daily" {
			t.Errorf("reply = %q", reply)
		}
		if fake.calls != 1 {
			t.Errorf("calls = %d, want 1", fake.calls)
		}
	})

	t.Run("rate limit retried once after delay", func(t *testing.T) {
		fake := &fakeTextCompleter{
			errs:      []error{&services.RateLimitError{RetryAfter: 10 * time.Millisecond}},
			responses: []string{"", "second attempt answer"},
		}
		svc := NewChatService(fake)

		start := time.Now()
		reply, err := svc.Chat(ctx, "hello", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply != "second attempt answer" {
			t.Errorf("reply = %q", reply)
		}
		if fake.calls != 2 {
			t.Errorf("calls = %d, want 2", fake.calls)
		}
		if time.Since(start) < 10*time.Millisecond {
			t.Error("retry did not wait the provider delay")
		}
	})

	t.Run("second rate limit is terminal", func(t *testing.T) {
		rateErr := &services.RateLimitError{RetryAfter: time.Millisecond}
		fake := &fakeTextCompleter{errs: []error{rateErr, rateErr}}
		svc := NewChatService(fake)

		_, err := svc.Chat(ctx, "hello", nil)
		var rle *services.RateLimitError
		if !errors.As(err, &rle) {
			t.Fatalf("expected rate-limit error, got %v", err)
		}
		if fake.calls != 2 {
			t.Errorf("calls = %d, want exactly 2", fake.calls)
		}
	})

	t.Run("other errors not retried", func(t *testing.T) {
		fake := &fakeTextCompleter{errs: []error{errors.New("boom")}}
		svc := NewChatService(fake)

		if _, err := svc.Chat(ctx, "hello", nil); err == nil {
			t.Fatal("expected error")
		}
		if fake.calls != 1 {
			t.Errorf("calls = %d, want 1", fake.calls)
		}
	})

	t.Run("cancelled context aborts the retry wait", func(t *testing.T) {
		fake := &fakeTextCompleter{
			errs: []error{&services.RateLimitError{RetryAfter: time.Minute}},
		}
		svc := NewChatService(fake)

		cancelCtx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := svc.Chat(cancelCtx, "hello", nil)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if fake.calls != 1 {
			t.Errorf("calls = %d, want 1", fake.calls)
		}
	})

	t.Run("history trimmed to recent turns", func(t *testing.T) {
		fake := &fakeTextCompleter{responses: []string{"ok"}}
		svc := NewChatService(fake)

		history := make([]dto.ChatTurn, 10)
		for i := range history {
			history[i] = dto.ChatTurn{
				Role:  "user",
				Parts: []dto.ChatPart{{Text: "old message"}},
			}
		}

		if _, err := svc.Chat(ctx, "latest question", history); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 2 framing turns + 4 history turns + the new message.
		if len(fake.lastSent) != 2+chatHistoryWindow+1 {
			t.Errorf("sent %d turns, want %d", len(fake.lastSent), 2+chatHistoryWindow+1)
		}
		last := fake.lastSent[len(fake.lastSent)-1]
		if last.Role != "user" || last.Parts[0].Text != "latest question" {
			t.Errorf("last turn = %+v", last)
		}
	})

	t.Run("assistant roles normalized to model", func(t *testing.T) {
		fake := &fakeTextCompleter{responses: []string{"ok"}}
		svc := NewChatService(fake)

		history := []dto.ChatTurn{
			{Role: "assistant", Parts: []dto.ChatPart{{Text: "previous answer"}}},
		}
		if _, err := svc.Chat(ctx, "next", history); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		replayed := fake.lastSent[2]
		if replayed.Role != "model" {
			t.Errorf("role = %q, want model", replayed.Role)
		}
	})
}
