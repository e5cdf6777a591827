package services

import (
	"errors"
	"fmt"
)

// Pipeline error taxonomy. Identification-path failures are fatal and surfaced;
// advisory-path failures are recovered locally via the templated fallback.
var (
	// ErrInvalidInput: empty or malformed request, rejected before any external call.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFood: text validation determined the input is not a food or drink.
	ErrNotFood = errors.New("input is not a food")

	// ErrInferenceUnavailable: the identification call timed out or failed after retries.
	ErrInferenceUnavailable = errors.New("inference service unavailable")

	// ErrInferenceMalformed: the inference service answered but the payload
	// could not be parsed into the expected structure.
	ErrInferenceMalformed = errors.New("inference response malformed")

	// ErrNoResolution: neither catalog matched and inference produced no usable
	// nutrient estimate. Callers degrade to a minimal default vector.
	ErrNoResolution = errors.New("no resolution for input")

	// ErrHalalUnconfirmed: a meal whose analysis flagged it non_halal cannot be
	// logged without the user's explicit confirmation.
	ErrHalalUnconfirmed = errors.New("meal requires an explicit halal confirmation before logging")
)

// StageError annotates a pipeline error with the stage and external dependency
// that produced it, so callers can tell transient failures from input-dependent ones.
type StageError struct {
	Stage string // "validate" | "identify" | "generic_lookup" | "ledger" | "advisory"
	Dep   string // "gemini" | "edamam" | "postgres" | ""
	Err   error
}

func (e *StageError) Error() string {
	if e.Dep != "" {
		return fmt.Sprintf("%s (%s): %v", e.Stage, e.Dep, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(stage, dep string, err error) error {
	return &StageError{Stage: stage, Dep: dep, Err: err}
}
