package http

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bubom6755/portfolio-backend/internal/chat/service"
)

type chatReq struct {
	Message string         `json:"message"`
	History []service.Turn `json:"history"`
}

// Handler exposes the public chat endpoint.
type Handler struct {
	chat *service.ChatService
}

func New(chat *service.ChatService) *Handler {
	return &Handler{chat: chat}
}

func (h *Handler) post(c *gin.Context) {
	if !h.chat.Available() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"ok":    false,
			"error": "AI service not available, please configure OPENAI_API_KEY",
		})
		return
	}

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	answer, err := h.chat.Reply(c.Request.Context(), req.Message, req.History)
	if err != nil {
		log.Printf("chat provider error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to get AI response"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": answer})
}

// Register attaches the chat route to the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/chat", h.post)
}
