package server

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/vibescout/vibescout/internal/agent"
	"github.com/vibescout/vibescout/internal/config"
	"github.com/vibescout/vibescout/internal/handler"
	"github.com/vibescout/vibescout/internal/llm"
	"github.com/vibescout/vibescout/internal/mock"
	"github.com/vibescout/vibescout/internal/search"
	"github.com/vibescout/vibescout/internal/storage"
)

// Deps bundles the wired service dependencies. In Go we pass dependencies
// explicitly — no DI container, no magic.
type Deps struct {
	Orchestrator *agent.Orchestrator
	Speaker      handler.Speaker // nil disables voice replies
	Runs         storage.RunRepository
	LLMCalls     storage.LLMCallRepository

	cleanup func() error
}

// Close releases resources held by the dependency graph (the database).
func (d *Deps) Close() error {
	if d.cleanup == nil {
		return nil
	}
	return d.cleanup()
}

// BuildDeps assembles the full dependency graph from configuration:
// LLM clients in fallback order, the optional search client, the SQLite
// bookkeeping repositories, and the orchestrator on top.
func BuildDeps(cfg *config.Config, logger *zap.Logger) (*Deps, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clients, err := buildLLMClients(cfg)
	if err != nil {
		return nil, err
	}

	// Search is optional: no key means a nil client and graceful degradation.
	var searchClient search.Client
	if cfg.HasSearch() {
		searchClient = search.NewSerperClient(cfg.Search.APIKey, "", logger)
	} else {
		logger.Info("no search API key configured, enrichment disabled")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.DatabasePath), 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}
	db, err := storage.NewDatabase(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	runs := storage.NewRunRepository(db)
	llmCalls := storage.NewLLMCallRepository(db)

	gen := agent.NewGenerator(clients, cfg.LLM.RatePerMinute, llmCalls, logger)
	orch := agent.NewOrchestrator(gen, searchClient, mock.NewProvider(), runs, logger)

	var speaker handler.Speaker
	if cfg.LLM.OpenAI.APIKey != "" {
		speaker = llm.NewSpeechClient(cfg.LLM.OpenAI.APIKey)
	}

	return &Deps{
		Orchestrator: orch,
		Speaker:      speaker,
		Runs:         runs,
		LLMCalls:     llmCalls,
		cleanup:      db.Close,
	}, nil
}

// buildLLMClients expands provider_order × per-provider model lists into the
// ordered client list the generator falls back across. Providers without an
// API key are skipped.
func buildLLMClients(cfg *config.Config) ([]llm.Client, error) {
	var clients []llm.Client

	for _, provider := range cfg.LLM.ProviderOrder {
		switch provider {
		case "anthropic":
			if cfg.LLM.Anthropic.APIKey == "" {
				continue
			}
			for _, m := range cfg.LLM.Anthropic.Models {
				clients = append(clients, llm.NewAnthropicClient(cfg.LLM.Anthropic.APIKey, m))
			}
		case "openai":
			if cfg.LLM.OpenAI.APIKey == "" {
				continue
			}
			for _, m := range cfg.LLM.OpenAI.Models {
				clients = append(clients, llm.NewOpenAIClient(cfg.LLM.OpenAI.APIKey, m))
			}
		default:
			return nil, fmt.Errorf("unknown LLM provider %q in provider_order", provider)
		}
	}

	if len(clients) == 0 {
		return nil, fmt.Errorf("no usable LLM clients: check provider_order and API keys")
	}
	return clients, nil
}
