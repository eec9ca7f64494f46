// Package agent contains the VibeScout orchestrator: the discovery pipeline
// that turns search parameters into AI-generated venue recommendations, and
// the chat pipeline that answers follow-up questions about them.
//
// The discovery pipeline is a sequential chain with one rule: nothing a
// collaborator does may become a user-visible hard failure. Context gathering
// is best-effort, generation falls back across model tiers, and a total
// generation or parse failure lands on static fallback data — RunDiscovery
// always returns a populated result list.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vibescout/vibescout/internal/model"
	"github.com/vibescout/vibescout/internal/search"
	"github.com/vibescout/vibescout/internal/storage"
)

// Orchestrator sequences the generation and search collaborators for one
// request. All state is request-scoped; a single Orchestrator is safe for
// concurrent use.
type Orchestrator struct {
	gen      *Generator
	search   search.Client // nil if no search key configured
	fallback FallbackProvider
	runs     storage.RunRepository // nil disables run recording
	logger   *zap.Logger
}

// NewOrchestrator wires the pipelines. search may be nil — the pipelines skip
// every search-dependent step and degrade to internal-knowledge-only output.
func NewOrchestrator(
	gen *Generator,
	searchClient search.Client,
	fallback FallbackProvider,
	runs storage.RunRepository,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		gen:      gen,
		search:   searchClient,
		fallback: fallback,
		runs:     runs,
		logger:   logger,
	}
}

// stepLog accumulates the append-only AgentStep records for one run.
type stepLog struct {
	steps []model.AgentStep
}

// add appends one completed step. Steps keep creation order and are never
// mutated afterwards.
func (l *stepLog) add(action, thought string) {
	l.steps = append(l.steps, model.AgentStep{
		ID:               uuid.NewString(),
		Timestamp:        time.Now(),
		Action:           action,
		Status:           model.StepCompleted,
		ThoughtSignature: thought,
	})
}

// RunDiscovery executes one end-to-end discovery run:
//
//	init → gather context → reason → generate → parse → enrich → done
//
// or, when generation/parsing fails entirely, → fallback → done. Either way
// the caller gets a non-empty step log and a non-empty venue list.
func (o *Orchestrator) RunDiscovery(ctx context.Context, params model.SearchParameters) *model.DiscoveryResult {
	start := time.Now()
	log := &stepLog{}

	log.add("Initializing autonomous scout brain...",
		"Setting up reasoning parameters for VibeScout.")

	socialContext := o.gatherContext(ctx, params, log)

	log.add("Analyzing sentiment and calculating Vibe Scores...",
		"Comparing social energy with budget and occasion constraints.")

	venues, err := o.generateVenues(ctx, params, socialContext)
	usedFallback := err != nil
	if usedFallback {
		o.logger.Warn("discovery generation failed, engaging fallback",
			zap.String("location", params.Location),
			zap.Error(err),
		)
		log.add("AI Connection Unstable - Engaging Backup Systems",
			"Unable to reach the reasoning engine (rate limit/network). Retrieving verified cache.")
		venues = o.fallback.Venues(params)
	} else if o.search != nil {
		log.add("Verifying visuals...",
			"Fetching real-time images for the suggested venues.")
		o.enrichImages(ctx, venues)
	}

	o.recordRun(ctx, params, venues, usedFallback, time.Since(start))

	return &model.DiscoveryResult{Steps: log.steps, Results: venues}
}

// gatherContext collects live social buzz for the prompt. Best-effort in two
// layers: an unconfigured search client skips the gather, and a failing one
// yields the "no data" sentinel — the run never aborts here.
func (o *Orchestrator) gatherContext(ctx context.Context, params model.SearchParameters, log *stepLog) string {
	if o.search == nil {
		log.add("Using internal knowledge...",
			"No search provider configured, relying on high-probability trending data.")
		return search.NoContextSentinel
	}

	log.add(fmt.Sprintf("Searching social media for %s vibes...", params.Location),
		fmt.Sprintf("Scanning TikTok and X for recent trends related to %s.", params.Occasion))

	return o.search.VibeContext(ctx, params.Location, params.Occasion)
}

// generateVenues runs the model-fallback generation and parses the reply.
// Any error — all models down, or unparseable output — triggers the caller's
// fallback path.
func (o *Orchestrator) generateVenues(ctx context.Context, params model.SearchParameters, socialContext string) ([]model.Venue, error) {
	text, err := o.gen.Generate(ctx, discoveryPrompt(params, socialContext), model.CallDiscovery)
	if err != nil {
		return nil, err
	}

	raw, err := extractJSONArray(text)
	if err != nil {
		return nil, err
	}

	var venues []model.Venue
	if err := json.Unmarshal([]byte(raw), &venues); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJSONArray, err)
	}
	if len(venues) == 0 {
		return nil, fmt.Errorf("%w: model returned an empty array", ErrNoJSONArray)
	}

	return venues, nil
}

// extractJSONArray slices the text between the first '[' and the last ']'.
// Models wrap JSON in prose and markdown fences; the brackets are the only
// stable anchor.
func extractJSONArray(text string) (string, error) {
	first := strings.Index(text, "[")
	last := strings.LastIndex(text, "]")
	if first == -1 || last == -1 || last < first {
		return "", ErrNoJSONArray
	}
	return text[first : last+1], nil
}

// enrichImages fans out one image search per venue and sets ImageURL to the
// first hit. Unordered parallel join: every venue is attempted, failures
// leave the venue's original image untouched, and nothing propagates to the
// caller.
func (o *Orchestrator) enrichImages(ctx context.Context, venues []model.Venue) {
	var wg sync.WaitGroup
	for i := range venues {
		wg.Add(1)
		go func(v *model.Venue) {
			defer wg.Done()
			query := fmt.Sprintf("%s %s interior vibe", v.Name, v.Location.Address)
			if images := o.search.SearchImages(ctx, query); len(images) > 0 {
				v.ImageURL = images[0]
			}
		}(&venues[i])
	}
	wg.Wait()
}

// recordRun persists the run summary. Best-effort bookkeeping — storage
// failures are logged and never affect the response.
func (o *Orchestrator) recordRun(ctx context.Context, params model.SearchParameters, venues []model.Venue, usedFallback bool, elapsed time.Duration) {
	if o.runs == nil {
		return
	}

	run := &model.DiscoveryRun{
		ID:           uuid.NewString(),
		Location:     params.Location,
		Occasion:     params.Occasion,
		Budget:       params.Budget,
		VenueCount:   len(venues),
		UsedFallback: usedFallback,
		DurationMs:   elapsed.Milliseconds(),
	}
	if err := o.runs.Create(ctx, run); err != nil {
		o.logger.Error("recording discovery run", zap.Error(err))
	}
}
