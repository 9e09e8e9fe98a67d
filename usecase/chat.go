package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/SAI-KARTHIK999/SkinSey/dto"
	"github.com/SAI-KARTHIK999/SkinSey/services"
)

// chatSystemPrompt frames the assistant. Sent as the first user turn with a
// canned model acknowledgment, since the provider has no system role on this
// endpoint.
const chatSystemPrompt = `You are SkinSey, a friendly skincare assistant. You help users with
skincare routines, product guidance, and understanding common skin concerns.
Keep answers concise and practical. You are not a doctor: for anything that
sounds medical or severe, recommend seeing a dermatologist. Politely decline
questions unrelated to skincare.`

const chatGreeting = "Hi! I'm SkinSey, your skincare assistant. How can I help your skin today?"

// Only the tail of the conversation goes upstream; older turns add cost
// without improving answers at this prompt size.
const chatHistoryWindow = 4

// TextCompleter abstracts the conversational completion provider.
type TextCompleter interface {
	GenerateContent(ctx context.Context, contents []services.Content, cfg *services.GenerationConfig) (string, error)
}

type ChatService struct {
	Text TextCompleter
}

func NewChatService(text TextCompleter) *ChatService {
	return &ChatService{Text: text}
}

// Chat answers one user message with the recent conversation as context.
// A rate-limited call is retried exactly once after the provider-specified
// delay; any other failure is terminal.
func (s *ChatService) Chat(ctx context.Context, message string, history []dto.ChatTurn) (string, error) {
	contents := []services.Content{
		{Role: "user", Parts: []services.Part{{Text: chatSystemPrompt}}},
		{Role: "model", Parts: []services.Part{{Text: chatGreeting}}},
	}

	tail := history
	if len(tail) > chatHistoryWindow {
		tail = tail[len(tail)-chatHistoryWindow:]
	}
	for _, turn := range tail {
		role := "user"
		if turn.Role == "model" || turn.Role == "assistant" {
			role = "model"
		}
		text := ""
		for _, part := range turn.Parts {
			text += part.Text
		}
		if text == "" {
			continue
		}
		contents = append(contents, services.Content{
			Role:  role,
			Parts: []services.Part{{Text: text}},
		})
	}

	contents = append(contents, services.Content{
		Role:  "user",
		Parts: []services.Part{{Text: message}},
	})

	cfg := &services.GenerationConfig{
		MaxOutputTokens: 500,
		Temperature:     0.7,
		TopP:            0.8,
		TopK:            40,
	}

	return generateWithRetry(ctx, s.Text, contents, cfg)
}

// generateWithRetry is the single retry point in the system: one extra
// attempt, only on the provider's rate-limit signal, after its delay.
func generateWithRetry(ctx context.Context, text TextCompleter, contents []services.Content, cfg *services.GenerationConfig) (string, error) {
	reply, err := text.GenerateContent(ctx, contents, cfg)
	if err == nil {
		return reply, nil
	}

	var rateErr *services.RateLimitError
	if !errors.As(err, &rateErr) {
		return "", err
	}

	select {
	case <-time.After(rateErr.RetryAfter):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	return text.GenerateContent(ctx, contents, cfg)
}
