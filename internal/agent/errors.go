package agent

import "errors"

// Go uses sentinel errors (predefined error values) instead of exception
// types. Callers check with errors.Is.

// ErrGenerationFailed means every configured model rejected the prompt. The
// discovery pipeline treats it purely as the trigger for the static fallback;
// it never surfaces from /discovery.
var ErrGenerationFailed = errors.New("all generation models failed")

// ErrNoJSONArray means the model's reply contained no recognizable JSON
// array. Same fallback treatment as ErrGenerationFailed.
var ErrNoJSONArray = errors.New("no JSON array found in model response")
