package usecase

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SAI-KARTHIK999/SkinSey/middleware"
	"github.com/SAI-KARTHIK999/SkinSey/model"
	"github.com/SAI-KARTHIK999/SkinSey/repository"
)

// analysisPrompt pins the vision model to the marker format the parser
// expects. Kept in one place so prompt and parser evolve together.
const analysisPrompt = `You are a dermatology assistant analyzing a facial skin photo.
Respond ONLY in the exact format below, with no extra commentary.

If the image is not a clear photo of human facial skin, respond with:
===ERROR===
<one short sentence explaining why>

Otherwise respond with:
===CONDITIONS===
1. <condition name>: <number>% confidence
2. <condition name>: <number>% confidence
===RECOMMENDATIONS===
- Recommendation: <specific, actionable skincare advice>
- Recommendation: <specific, actionable skincare advice>
===URGENT NOTES===
- Urgent: <note requiring professional attention, only if warranted>

List at most 3 conditions, ordered by confidence. Omit the urgent section
entirely when nothing warrants it.`

// VisionCompleter abstracts the image-capable completion provider.
type VisionCompleter interface {
	CompleteVision(ctx context.Context, prompt, imageB64 string) (string, error)
}

type AnalysisService struct {
	Vision VisionCompleter
	Repo   *repository.AnalysesRepo
}

func NewAnalysisService(vision VisionCompleter, repo *repository.AnalysesRepo) *AnalysisService {
	return &AnalysisService{Vision: vision, Repo: repo}
}

// Analyze runs one photo through the vision model, parses the response, and
// persists the record with a derived score. Parse failures come back as
// *ParseError so the handler can map each kind; the provider is never
// retried for them.
func (s *AnalysisService) Analyze(ctx context.Context, userID primitive.ObjectID, imageB64 string) (*model.SkinAnalysis, error) {
	raw, err := s.Vision.CompleteVision(ctx, analysisPrompt, imageB64)
	if err != nil {
		return nil, err
	}

	result, err := ParseAnalysisResponse(raw)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			middleware.TrackAnalysisOutcome(string(parseErr.Kind))
		}
		return nil, err
	}
	middleware.TrackAnalysisOutcome("ok")

	analysis := &model.SkinAnalysis{
		UserID:          userID,
		Conditions:      result.Conditions,
		Recommendations: result.Recommendations,
		UrgentNotes:     result.UrgentNotes,
		RawResponse:     result.RawResponse,
		Score:           deriveScore(result.Conditions),
	}

	if err := s.Repo.InsertAnalysis(ctx, analysis); err != nil {
		// The user already paid for the provider call; hand the parsed
		// result back even though history will miss this entry.
		log.Printf("failed to persist skin analysis for %s: %v", userID.Hex(), err)
	}
	return analysis, nil
}

// deriveScore maps condition confidence to a 0-100 health score: the more
// confident the model is about problems, the lower the score.
func deriveScore(conditions []model.Condition) int {
	if len(conditions) == 0 {
		return 100
	}
	sum := 0
	for _, c := range conditions {
		sum += c.Confidence
	}
	score := 100 - sum/len(conditions)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
