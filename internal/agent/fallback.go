package agent

import "github.com/vibescout/vibescout/internal/model"

// FallbackProvider supplies deterministic venue data for when every model
// fails. It is injected rather than imported so tests can substitute it; the
// production implementation lives in internal/mock.
//
// Venues must always return a non-empty list — it is the guaranteed terminal
// success path of a discovery run.
type FallbackProvider interface {
	Venues(params model.SearchParameters) []model.Venue
}
