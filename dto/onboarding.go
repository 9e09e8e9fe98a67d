package dto

type OnboardingRequest struct {
	SkinType    string   `json:"skinType" binding:"required"`
	Concerns    []string `json:"concerns"`
	Sensitivity string   `json:"sensitivity"`
	Location    string   `json:"location"`
	Routine     []string `json:"routine"`
}
