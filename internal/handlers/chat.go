package handlers

import (
	"net/http"
	"strings"

	"gamescove/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const chatSystemPrompt = "You are the assistant for a games and gaming-gear " +
	"website. Answer questions about games, reviews and products briefly and " +
	"helpfully."

type ChatHandler struct {
	chat *services.ChatService
}

func NewChatHandler() *ChatHandler {
	return &ChatHandler{chat: services.GetChatService()}
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req struct {
		Message string                 `json:"message"`
		History []services.ChatMessage `json:"history"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		jsonError(c, http.StatusBadRequest, "message is required")
		return
	}

	messages := make([]services.ChatMessage, 0, len(req.History)+2)
	messages = append(messages, services.ChatMessage{Role: "system", Content: chatSystemPrompt})
	messages = append(messages, req.History...)
	messages = append(messages, services.ChatMessage{Role: "user", Content: req.Message})

	reply, err := h.chat.Complete(messages)
	if err != nil {
		logrus.Errorf("Chat completion failed: %v", err)
		jsonError(c, http.StatusInternalServerError, "chat service unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
