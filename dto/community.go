package dto

type TipRequest struct {
	Content string `json:"content" binding:"required"`
}

type SuccessStoryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
}
