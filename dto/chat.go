package dto

// ChatTurn mirrors the text-completion provider's role/parts shape so the
// client can replay its local history verbatim.
type ChatTurn struct {
	Role  string     `json:"role"`
	Parts []ChatPart `json:"parts"`
}

type ChatPart struct {
	Text string `json:"text"`
}

type ChatRequest struct {
	Message             string     `json:"message" binding:"required"`
	ConversationHistory []ChatTurn `json:"conversationHistory"`
}

type ChatResponse struct {
	Message        string `json:"message"`
	Timestamp      string `json:"timestamp"`
	ConversationID string `json:"conversationId"`
}
