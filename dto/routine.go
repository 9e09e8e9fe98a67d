package dto

// RoutineCompletionRequest records a (possibly partial) check-off for one
// calendar day. Later requests for the same day overwrite the stored record.
type RoutineCompletionRequest struct {
	Date         string   `json:"date" binding:"required"`
	MorningSteps []string `json:"morningSteps"`
	EveningSteps []string `json:"eveningSteps"`
	Score        int      `json:"score"`
	Completed    bool     `json:"completed"`
}

type RoutineCompletionUpdateRequest struct {
	CompletionID string    `json:"completionId" binding:"required,objectid"`
	MorningSteps *[]string `json:"morningSteps"`
	EveningSteps *[]string `json:"eveningSteps"`
	Score        *int      `json:"score"`
	Completed    *bool     `json:"completed"`
}

type RoutineTemplateRequest struct {
	Morning []string `json:"morning" binding:"required"`
	Evening []string `json:"evening" binding:"required"`
	Note    string   `json:"note"`
}

// RoutinePlanRequest asks the text-completion model for a generated
// template.
type RoutinePlanRequest struct {
	SkinType     string   `json:"skinType" binding:"required"`
	Score        int      `json:"score"`
	Climate      string   `json:"climate"`
	SkinConcerns []string `json:"skinConcerns"`
	Steps        int      `json:"steps"`
	Times        int      `json:"times"`
}

type RoutinePlanResponse struct {
	MorningRoutine   []string `json:"morningRoutine"`
	EveningRoutine   []string `json:"eveningRoutine"`
	MotivationalNote string   `json:"motivationalNote"`
}
