package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vibescout/vibescout/internal/model"
)

// RunRepository persists discovery run summaries.
// Go interfaces are implicit — any struct with these methods satisfies it,
// which is what makes the in-memory test fakes cheap to write.
type RunRepository interface {
	Create(ctx context.Context, run *model.DiscoveryRun) error
	ListRecent(ctx context.Context, limit int) ([]model.DiscoveryRun, error)
	Count(ctx context.Context) (int64, error)
	CountFallback(ctx context.Context) (int64, error)
}

// sqliteRunRepository is the SQLite implementation. The struct is unexported;
// only the interface is public.
type sqliteRunRepository struct {
	db *sqlx.DB
}

// NewRunRepository creates a SQLite-backed RunRepository.
func NewRunRepository(db *sqlx.DB) RunRepository {
	return &sqliteRunRepository{db: db}
}

func (r *sqliteRunRepository) Create(ctx context.Context, run *model.DiscoveryRun) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO discovery_runs (id, location, occasion, budget, venue_count, used_fallback, duration_ms)
		VALUES (:id, :location, :occasion, :budget, :venue_count, :used_fallback, :duration_ms)
	`, run)
	if err != nil {
		return fmt.Errorf("creating discovery run: %w", err)
	}
	return nil
}

func (r *sqliteRunRepository) ListRecent(ctx context.Context, limit int) ([]model.DiscoveryRun, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []model.DiscoveryRun
	err := r.db.SelectContext(ctx, &runs,
		"SELECT * FROM discovery_runs ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent runs: %w", err)
	}
	return runs, nil
}

func (r *sqliteRunRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM discovery_runs")
	return count, err
}

func (r *sqliteRunRepository) CountFallback(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM discovery_runs WHERE used_fallback = 1")
	return count, err
}

// LLMCallRepository persists per-model-attempt audit rows for cost tracking.
type LLMCallRepository interface {
	Create(ctx context.Context, call *model.LLMCall) error
	Count(ctx context.Context) (int64, error)
	CountByProvider(ctx context.Context, provider string) (int64, error)
}

type sqliteLLMCallRepository struct {
	db *sqlx.DB
}

// NewLLMCallRepository creates a SQLite-backed LLMCallRepository.
func NewLLMCallRepository(db *sqlx.DB) LLMCallRepository {
	return &sqliteLLMCallRepository{db: db}
}

func (r *sqliteLLMCallRepository) Create(ctx context.Context, call *model.LLMCall) error {
	result, err := r.db.NamedExecContext(ctx, `
		INSERT INTO llm_calls (provider, model, kind, success, duration_ms)
		VALUES (:provider, :model, :kind, :success, :duration_ms)
	`, call)
	if err != nil {
		return fmt.Errorf("creating llm call record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	call.ID = id
	return nil
}

func (r *sqliteLLMCallRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM llm_calls")
	return count, err
}

func (r *sqliteLLMCallRepository) CountByProvider(ctx context.Context, provider string) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM llm_calls WHERE provider = ?", provider)
	return count, err
}
