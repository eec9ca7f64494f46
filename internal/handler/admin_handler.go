package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vibescout/vibescout/internal/storage"
)

// AdminHandler handles administrative endpoints.
type AdminHandler struct {
	runs     storage.RunRepository
	llmCalls storage.LLMCallRepository
	logger   *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(runs storage.RunRepository, llmCalls storage.LLMCallRepository, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		runs:     runs,
		llmCalls: llmCalls,
		logger:   logger,
	}
}

// Stats returns discovery run counters and recent run summaries.
// Route: GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	total, err := h.runs.Count(ctx)
	if err != nil {
		h.logger.Error("counting runs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	fallbacks, err := h.runs.CountFallback(ctx)
	if err != nil {
		h.logger.Error("counting fallback runs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	llmCalls, err := h.llmCalls.Count(ctx)
	if err != nil {
		h.logger.Error("counting llm calls", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	recent, err := h.runs.ListRecent(ctx, 10)
	if err != nil {
		h.logger.Error("listing recent runs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_runs":    total,
		"fallback_runs": fallbacks,
		"llm_calls":     llmCalls,
		"recent":        recent,
	})
}
