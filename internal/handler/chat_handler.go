package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vibescout/vibescout/internal/model"
)

// ChatService is what the handler needs from the orchestrator's chat side.
type ChatService interface {
	Chat(ctx context.Context, messages []model.ChatMessage, venues []model.Venue) (*model.ChatReply, error)
}

// Speaker synthesizes spoken audio for a reply. Optional — nil disables
// voice replies.
type Speaker interface {
	Speak(ctx context.Context, text string) (string, error)
}

// chatRequest is the POST /chat body.
type chatRequest struct {
	Messages      []model.ChatMessage `json:"messages"`
	CurrentVenues []model.Venue       `json:"currentVenues"`
	Voice         bool                `json:"voice,omitempty"`
}

// ChatHandler handles concierge chat requests.
type ChatHandler struct {
	chat    ChatService
	speaker Speaker // nil if voice replies are disabled
	logger  *zap.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chat ChatService, speaker Speaker, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chat:    chat,
		speaker: speaker,
		logger:  logger,
	}
}

// Chat answers one concierge turn.
// Route: POST /api/v1/chat
//
// Unlike discovery, a chat pipeline failure does surface as a 500 — the UI
// falls back to its generic "trouble understanding" spoken message.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages must not be empty"})
		return
	}

	reply, err := h.chat.Chat(c.Request.Context(), req.Messages, req.CurrentVenues)
	if err != nil {
		h.logger.Error("chat pipeline failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process chat message"})
		return
	}

	// Voice synthesis is best-effort: a failure means a silent reply, not an error.
	if req.Voice && h.speaker != nil {
		audio, err := h.speaker.Speak(c.Request.Context(), reply.Text)
		if err != nil {
			h.logger.Warn("speech synthesis failed", zap.Error(err))
		} else {
			reply.Audio = audio
		}
	}

	c.JSON(http.StatusOK, reply)
}
