// Package qgen generates practice questions with the model provider and
// validates them before they enter the question bank.
package qgen

import (
	"fmt"

	"github.com/studychamp/studychamp/internal/bank"
)

// Validator checks a generated question for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, e.g. "structural".
	Name() string

	// Validate checks the question and returns nil if it passes. The
	// validator receives the full GenerateInput for context.
	Validate(q *bank.Question, input GenerateInput) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
