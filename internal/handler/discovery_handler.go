package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vibescout/vibescout/internal/model"
)

// DiscoveryService is what the handler needs from the orchestrator. Declared
// here, on the consumer side, so tests can hand in a fake.
type DiscoveryService interface {
	RunDiscovery(ctx context.Context, params model.SearchParameters) *model.DiscoveryResult
}

// DiscoveryHandler handles venue discovery requests.
type DiscoveryHandler struct {
	discovery DiscoveryService
	logger    *zap.Logger
}

// NewDiscoveryHandler creates a new DiscoveryHandler.
func NewDiscoveryHandler(discovery DiscoveryService, logger *zap.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{
		discovery: discovery,
		logger:    logger,
	}
}

// Discover runs one discovery pipeline invocation.
// Route: POST /api/v1/discovery
//
// The pipeline guarantees a populated result list — collaborator failures
// degrade internally, so the only error responses here are for bad input.
func (h *DiscoveryHandler) Discover(c *gin.Context) {
	var params model.SearchParameters
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if strings.TrimSpace(params.Location) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location is required"})
		return
	}

	h.logger.Info("discovery request",
		zap.String("location", params.Location),
		zap.String("occasion", params.Occasion),
		zap.Float64("budget", params.Budget),
	)

	result := h.discovery.RunDiscovery(c.Request.Context(), params)
	c.JSON(http.StatusOK, result)
}
