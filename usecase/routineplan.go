package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SAI-KARTHIK999/SkinSey/dto"
	"github.com/SAI-KARTHIK999/SkinSey/services"
)

type RoutinePlanService struct {
	Text TextCompleter
}

func NewRoutinePlanService(text TextCompleter) *RoutinePlanService {
	return &RoutinePlanService{Text: text}
}

// GeneratePlan asks the text model for a personalized routine as strict
// JSON. The model wraps answers in markdown fences more often than not, so
// they are stripped before decoding.
func (s *RoutinePlanService) GeneratePlan(ctx context.Context, req *dto.RoutinePlanRequest) (*dto.RoutinePlanResponse, error) {
	steps := req.Steps
	if steps <= 0 {
		steps = 5
	}

	prompt := fmt.Sprintf(`Create a personalized skincare routine.

Skin type: %s
Current skin score: %d/100
Climate: %s
Concerns: %s
Steps per routine: %d

Respond with ONLY a JSON object, no markdown, in exactly this shape:
{"morningRoutine": ["step 1", "step 2"], "eveningRoutine": ["step 1", "step 2"], "motivationalNote": "one encouraging sentence"}

Each routine must have exactly %d steps. Steps are short product-level
instructions, ordered by application.`,
		req.SkinType, req.Score, req.Climate,
		strings.Join(req.SkinConcerns, ", "), steps, steps)

	contents := []services.Content{
		{Role: "user", Parts: []services.Part{{Text: prompt}}},
	}
	cfg := &services.GenerationConfig{
		MaxOutputTokens: 500,
		Temperature:     0.7,
		TopP:            0.8,
		TopK:            40,
	}

	raw, err := generateWithRetry(ctx, s.Text, contents, cfg)
	if err != nil {
		return nil, err
	}

	var plan dto.RoutinePlanResponse
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &plan); err != nil {
		return nil, fmt.Errorf("routine plan decode failed: %w", err)
	}
	if len(plan.MorningRoutine) == 0 || len(plan.EveningRoutine) == 0 {
		return nil, fmt.Errorf("routine plan missing steps")
	}
	return &plan, nil
}

// stripCodeFences removes a surrounding ```json ... ``` block when present.
func stripCodeFences(s string) string {
	clean := strings.TrimSpace(s)
	if !strings.HasPrefix(clean, "```") {
		return clean
	}
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	return strings.TrimSpace(clean)
}
