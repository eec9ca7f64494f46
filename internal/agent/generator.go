package agent

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/vibescout/vibescout/internal/llm"
	"github.com/vibescout/vibescout/internal/model"
	"github.com/vibescout/vibescout/internal/storage"
)

// Generator produces text from an ordered list of LLM clients: first client
// is primary, the rest are fallbacks. A success short-circuits the list; a
// failure logs a warning and moves to the next client — there is no per-model
// retry. This is graceful degradation across model tiers, not resilience
// against transient blips.
type Generator struct {
	clients []llm.Client
	limiter *rate.Limiter
	calls   storage.LLMCallRepository // nil disables call recording
	logger  *zap.Logger
}

// NewGenerator creates a generator over the ordered client list. The order is
// configurable (llm.provider_order plus per-provider model lists), so swapping
// model priority is a config change, not a code change.
func NewGenerator(clients []llm.Client, ratePerMinute int, calls storage.LLMCallRepository, logger *zap.Logger) *Generator {
	if ratePerMinute <= 0 {
		ratePerMinute = 10
	}
	rps := rate.Every(time.Minute / time.Duration(ratePerMinute))

	return &Generator{
		clients: clients,
		limiter: rate.NewLimiter(rps, 1), // burst of 1 — strict rate limiting
		calls:   calls,
		logger:  logger,
	}
}

// Generate tries each client in order until one returns text. When the last
// client fails, the returned error wraps ErrGenerationFailed plus the last
// underlying error.
func (g *Generator) Generate(ctx context.Context, prompt string, kind model.LLMCallKind) (string, error) {
	if len(g.clients) == 0 {
		return "", fmt.Errorf("%w: no LLM clients configured", ErrGenerationFailed)
	}

	var lastErr error

	for i, client := range g.clients {
		// Rate limit — blocks until a token is available or context is cancelled.
		if err := g.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit wait: %w", err)
		}

		start := time.Now()
		text, err := client.Generate(ctx, prompt)
		g.recordCall(ctx, client, kind, err, time.Since(start).Milliseconds())

		if err == nil {
			return text, nil
		}

		lastErr = err

		if i < len(g.clients)-1 {
			g.logger.Warn("model failed, trying next",
				zap.String("provider", client.ProviderName()),
				zap.String("model", client.ModelName()),
				zap.Error(err),
			)
		}
	}

	return "", fmt.Errorf("%w: %w", ErrGenerationFailed, lastErr)
}

// recordCall persists one model attempt for cost tracking. Best-effort:
// a storage failure is logged and never affects the generation result.
func (g *Generator) recordCall(ctx context.Context, client llm.Client, kind model.LLMCallKind, callErr error, durationMs int64) {
	if g.calls == nil {
		return
	}

	call := &model.LLMCall{
		Provider: client.ProviderName(),
		Model:    client.ModelName(),
		Kind:     kind,
		Success:  callErr == nil,
	}
	call.DurationMs = &durationMs

	if err := g.calls.Create(ctx, call); err != nil {
		g.logger.Error("recording LLM call", zap.Error(err))
	}
}
