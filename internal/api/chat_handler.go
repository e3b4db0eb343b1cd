package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Kendal-dot/racebuddy/internal/llm"
	"github.com/Kendal-dot/racebuddy/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes the race assistant.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// --- Request/Response Structs ---

type ChatRequest struct {
	Message string        `json:"message" binding:"required"`
	History []ChatMessage `json:"history"`
}

// ChatMessage is one prior turn of the conversation, replayed so the
// assistant keeps context across requests.
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// --- Handler Methods ---

// Ask forwards a question to the race assistant.
func (h *ChatHandler) Ask(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	history := make([]llm.Message, 0, len(req.History))
	for _, m := range req.History {
		history = append(history, llm.Message{Role: m.Role, Content: m.Content})
	}

	reply, err := h.chatService.Ask(c.Request.Context(), req.Message, history)
	if err != nil {
		if errors.Is(err, service.ErrChatUnavailable) {
			abortWithError(c, http.StatusServiceUnavailable, "The assistant is unavailable right now")
			return
		}
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}
