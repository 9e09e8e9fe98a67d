package handler

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/SAI-KARTHIK999/SkinSey/dto"
	"github.com/SAI-KARTHIK999/SkinSey/usecase"
	"github.com/SAI-KARTHIK999/SkinSey/utils"
)

func ChatbotHandler(c *gin.Context, chatService *usecase.ChatService) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "A message is required")
		return
	}

	reply, err := chatService.Chat(c, req.Message, req.ConversationHistory)
	if err != nil {
		log.Printf("chatbot completion failed: %v", err)
		utils.ServiceUnavailable(c, "The assistant is temporarily unavailable")
		return
	}

	utils.Success(c, dto.ChatResponse{
		Message:        reply,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		ConversationID: uuid.NewString(),
	})
}
