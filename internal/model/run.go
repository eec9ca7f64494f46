package model

import "time"

// DiscoveryRun is the persisted summary of one discovery run — bookkeeping for
// the admin stats endpoint and the CLI history command. The venues themselves
// are never persisted; only this summary row is.
// Each field has two tags:
//   - `db:"column_name"` — used by sqlx to scan database rows
//   - `json:"field_name"` — used for JSON serialization (API responses)
type DiscoveryRun struct {
	ID           string    `db:"id" json:"id"`
	Location     string    `db:"location" json:"location"`
	Occasion     string    `db:"occasion" json:"occasion"`
	Budget       float64   `db:"budget" json:"budget"`
	VenueCount   int       `db:"venue_count" json:"venue_count"`
	UsedFallback bool      `db:"used_fallback" json:"used_fallback"`
	DurationMs   int64     `db:"duration_ms" json:"duration_ms"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// LLMCallKind says which pipeline issued an LLM call.
type LLMCallKind string

const (
	CallDiscovery LLMCallKind = "discovery"
	CallChat      LLMCallKind = "chat"
)

// LLMCall tracks each attempt against an LLM provider for cost monitoring.
// One row per model attempt — a discovery that falls through two models
// records two rows.
type LLMCall struct {
	ID         int64       `db:"id" json:"id"`
	Provider   string      `db:"provider" json:"provider"`
	Model      string      `db:"model" json:"model"`
	Kind       LLMCallKind `db:"kind" json:"kind"`
	Success    bool        `db:"success" json:"success"`
	DurationMs *int64      `db:"duration_ms" json:"duration_ms,omitempty"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
}
