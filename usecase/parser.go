package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/SAI-KARTHIK999/SkinSey/model"
)

// The vision model is prompted to answer in a marker-delimited text format.
// These markers are the wire contract; section boundaries are found by the
// next "===" occurrence, so unknown markers still terminate a section.
const (
	markerError           = "===ERROR==="
	markerConditions      = "===CONDITIONS==="
	markerRecommendations = "===RECOMMENDATIONS==="
	markerUrgentNotes     = "===URGENT NOTES==="

	prefixRecommendation = "- Recommendation:"
	prefixUrgent         = "- Urgent:"
)

type ParseErrorKind string

const (
	// ParseDeclined: the model explicitly refused via ===ERROR===.
	ParseDeclined ParseErrorKind = "analysis_declined"
	// ParseMalformed: a required section marker is missing entirely.
	ParseMalformed ParseErrorKind = "malformed_response"
	// ParseIncomplete: markers present but no usable lines survived.
	ParseIncomplete ParseErrorKind = "incomplete_analysis"
)

// ParseError carries the raw upstream text so a failed analysis can be
// debugged without reproducing the provider call.
type ParseError struct {
	Kind   ParseErrorKind
	Reason string
	Raw    string
}

func (e *ParseError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return string(e.Kind)
}

var ordinalPrefix = regexp.MustCompile(`^\d+\.\s*`)

// ParseAnalysisResponse turns one vision-model response into an
// AnalysisResult. Individual unparseable lines are skipped (the upstream
// text is inherently noisy); missing sections and empty results fail with
// the raw text attached. Parsing is pure: same input, same output, no
// retries.
func ParseAnalysisResponse(raw string) (*model.AnalysisResult, error) {
	// The decline reason is everything after the marker, even if the model
	// emitted more section markers below it.
	if idx := strings.Index(raw, markerError); idx >= 0 {
		reason := strings.TrimSpace(raw[idx+len(markerError):])
		if reason == "" {
			reason = "Unknown"
		}
		return nil, &ParseError{Kind: ParseDeclined, Reason: reason, Raw: raw}
	}

	if !strings.Contains(raw, markerConditions) || !strings.Contains(raw, markerRecommendations) {
		return nil, &ParseError{Kind: ParseMalformed, Reason: "required section marker missing", Raw: raw}
	}

	result := &model.AnalysisResult{
		Conditions:      []model.Condition{},
		Recommendations: []string{},
		UrgentNotes:     []string{},
		RawResponse:     raw,
	}

	for _, line := range strings.Split(sectionAfter(raw, markerConditions), "\n") {
		clean := strings.TrimSpace(line)
		if clean == "" || !strings.Contains(clean, "%") {
			continue
		}
		parts := strings.SplitN(clean, ":", 2)
		if len(parts) < 2 {
			continue
		}
		name := strings.TrimSpace(ordinalPrefix.ReplaceAllString(parts[0], ""))
		confText := strings.TrimSpace(strings.ReplaceAll(parts[1], "% confidence", ""))
		confidence, err := strconv.Atoi(confText)
		if err != nil {
			continue
		}
		result.Conditions = append(result.Conditions, model.Condition{
			Name:       name,
			Confidence: confidence,
		})
	}

	for _, line := range strings.Split(sectionAfter(raw, markerRecommendations), "\n") {
		clean := strings.TrimSpace(line)
		if !strings.HasPrefix(clean, prefixRecommendation) {
			continue
		}
		text := strings.TrimSpace(strings.SplitN(clean, ":", 2)[1])
		result.Recommendations = append(result.Recommendations, text)
	}

	if strings.Contains(raw, markerUrgentNotes) {
		for _, line := range strings.Split(sectionAfter(raw, markerUrgentNotes), "\n") {
			clean := strings.TrimSpace(line)
			if !strings.HasPrefix(clean, prefixUrgent) {
				continue
			}
			text := strings.TrimSpace(strings.SplitN(clean, ":", 2)[1])
			result.UrgentNotes = append(result.UrgentNotes, text)
		}
	}

	if len(result.Conditions) == 0 || len(result.Recommendations) == 0 {
		return nil, &ParseError{Kind: ParseIncomplete, Reason: "no conditions or recommendations parsed", Raw: raw}
	}

	return result, nil
}

// sectionAfter returns the text following the first occurrence of marker,
// up to the next "===" (the start of whatever marker follows) or the end of
// the string.
func sectionAfter(s, marker string) string {
	idx := strings.Index(s, marker)
	if idx < 0 {
		return ""
	}
	rest := s[idx+len(marker):]
	if next := strings.Index(rest, "==="); next >= 0 {
		rest = rest[:next]
	}
	return rest
}
