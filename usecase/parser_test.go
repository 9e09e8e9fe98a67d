package usecase

import (
	"errors"
	"testing"
)

const fullAnalysisResponse = `===CONDITIONS===
1. Acne: 85% confidence
2. Dryness: 60% confidence
3. Redness: not sure
===RECOMMENDATIONS===
- Recommendation: Use a salicylic acid cleanser twice daily
- Recommendation: Apply moisturizer with ceramides: morning and night
Some stray commentary the model added
===URGENT NOTES===
- Urgent: Cystic lesions on the jawline should be seen by a dermatologist
`

func TestParseAnalysisResponse(t *testing.T) {
	t.Run("full response", func(t *testing.T) {
		result, err := ParseAnalysisResponse(fullAnalysisResponse)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(result.Conditions) != 2 {
			t.Fatalf("expected 2 conditions (bad line skipped), got %d", len(result.Conditions))
		}
		if result.Conditions[0].Name != "Acne" || result.Conditions[0].Confidence != 85 {
			t.Errorf("first condition = %+v", result.Conditions[0])
		}
		if result.Conditions[1].Name != "Dryness" || result.Conditions[1].Confidence != 60 {
			t.Errorf("second condition = %+v", result.Conditions[1])
		}

		if len(result.Recommendations) != 2 {
			t.Fatalf("expected 2 recommendations, got %d", len(result.Recommendations))
		}
		// Text after the FIRST colon is kept whole, embedded colons included.
		if result.Recommendations[1] != "Apply moisturizer with ceramides: morning and night" {
			t.Errorf("recommendation with colon truncated: %q", result.Recommendations[1])
		}

		if len(result.UrgentNotes) != 1 {
			t.Fatalf("expected 1 urgent note, got %d", len(result.UrgentNotes))
		}
		if result.RawResponse != fullAnalysisResponse {
			t.Error("raw response not carried through")
		}
	})

	t.Run("declined with reason", func(t *testing.T) {
		_, err := ParseAnalysisResponse("===ERROR===\nThe image does not show human skin\n")
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected *ParseError, got %v", err)
		}
		if parseErr.Kind != ParseDeclined {
			t.Errorf("kind = %s, want %s", parseErr.Kind, ParseDeclined)
		}
		if parseErr.Reason != "The image does not show human skin" {
			t.Errorf("reason = %q", parseErr.Reason)
		}
	})

	t.Run("declined without reason", func(t *testing.T) {
		_, err := ParseAnalysisResponse("===ERROR===")
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected *ParseError, got %v", err)
		}
		if parseErr.Reason != "Unknown" {
			t.Errorf("reason = %q, want Unknown", parseErr.Reason)
		}
	})

	t.Run("error marker wins over other sections", func(t *testing.T) {
		raw := "===CONDITIONS===\n1. Acne: 85% confidence\n===ERROR===\nblurred image"
		_, err := ParseAnalysisResponse(raw)
		var parseErr *ParseError
		if !errors.As(err, &parseErr) || parseErr.Kind != ParseDeclined {
			t.Fatalf("expected declined, got %v", err)
		}
	})

	t.Run("decline reason keeps everything after the marker", func(t *testing.T) {
		raw := "===ERROR===\nblurry\n===CONDITIONS===\n1. Acne: 85% confidence"
		_, err := ParseAnalysisResponse(raw)
		var parseErr *ParseError
		if !errors.As(err, &parseErr) || parseErr.Kind != ParseDeclined {
			t.Fatalf("expected declined, got %v", err)
		}
		// Trailing markers are part of the reason, not section boundaries.
		want := "blurry\n===CONDITIONS===\n1. Acne: 85% confidence"
		if parseErr.Reason != want {
			t.Errorf("reason = %q, want %q", parseErr.Reason, want)
		}
	})

	t.Run("missing markers", func(t *testing.T) {
		for _, raw := range []string{
			"just some prose",
			"===CONDITIONS===\n1. Acne: 85% confidence\n",
			"===RECOMMENDATIONS===\n- Recommendation: wash face\n",
		} {
			_, err := ParseAnalysisResponse(raw)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError for %q, got %v", raw, err)
			}
			if parseErr.Kind != ParseMalformed {
				t.Errorf("kind for %q = %s, want %s", raw, parseErr.Kind, ParseMalformed)
			}
			if parseErr.Raw != raw {
				t.Error("raw text not attached to malformed error")
			}
		}
	})

	t.Run("markers present but nothing usable", func(t *testing.T) {
		raw := "===CONDITIONS===\nnothing parseable here\n===RECOMMENDATIONS===\nno list items\n"
		_, err := ParseAnalysisResponse(raw)
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected *ParseError, got %v", err)
		}
		if parseErr.Kind != ParseIncomplete {
			t.Errorf("kind = %s, want %s", parseErr.Kind, ParseIncomplete)
		}
	})

	t.Run("urgent notes optional", func(t *testing.T) {
		raw := "===CONDITIONS===\n1. Acne: 40% confidence\n===RECOMMENDATIONS===\n- Recommendation: gentle cleanser\n"
		result, err := ParseAnalysisResponse(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.UrgentNotes) != 0 {
			t.Errorf("expected no urgent notes, got %v", result.UrgentNotes)
		}
	})

	t.Run("parsing is deterministic", func(t *testing.T) {
		first, err := ParseAnalysisResponse(fullAnalysisResponse)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := ParseAnalysisResponse(fullAnalysisResponse)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(first.Conditions) != len(second.Conditions) ||
			len(first.Recommendations) != len(second.Recommendations) ||
			len(first.UrgentNotes) != len(second.UrgentNotes) {
			t.Error("same input produced different results")
		}
	})

	t.Run("confidence not range checked", func(t *testing.T) {
		raw := "===CONDITIONS===\n1. Acne: 250% confidence\n===RECOMMENDATIONS===\n- Recommendation: see a professional\n"
		result, err := ParseAnalysisResponse(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Conditions[0].Confidence != 250 {
			t.Errorf("confidence = %d, want 250 kept as-is", result.Conditions[0].Confidence)
		}
	})
}
