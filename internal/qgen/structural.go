package qgen

import (
	"regexp"
	"strings"

	"github.com/studychamp/studychamp/internal/bank"
)

var numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *bank.Question, _ GenerateInput) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question is empty",
			Retryable: true,
		}
	}
	if len(q.Text) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question exceeds 500 characters",
			Retryable: true,
		}
	}
	if q.CorrectAnswer == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "correct_answer is empty",
			Retryable: true,
		}
	}
	if q.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if q.Points < 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "points must be positive",
			Retryable: true,
		}
	}

	switch q.Type {
	case bank.TypeMultipleChoice:
		if len(q.Options) < 2 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "multiple-choice needs at least 2 options",
				Retryable: true,
			}
		}
		if !containsAnswer(q.Options, q.CorrectAnswer) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "correct_answer is not among the options",
				Retryable: true,
			}
		}
	case bank.TypeNumerical:
		if !numberPattern.MatchString(q.CorrectAnswer) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "numerical correct_answer contains no number",
				Retryable: true,
			}
		}
	case bank.TypeShortAnswer, bank.TypeLongAnswer:
		// Free-text answers need no structural checks beyond non-empty.
	default:
		return &ValidationError{
			Validator: v.Name(),
			Message:   "type must be \"multiple-choice\", \"short-answer\", \"long-answer\", or \"numerical\"",
			Retryable: true,
		}
	}

	switch q.Difficulty {
	case bank.DifficultyEasy, bank.DifficultyMedium, bank.DifficultyHard:
	default:
		return &ValidationError{
			Validator: v.Name(),
			Message:   "difficulty must be \"easy\", \"medium\", or \"hard\"",
			Retryable: true,
		}
	}

	return nil
}

func containsAnswer(options []string, answer string) bool {
	want := strings.ToLower(strings.TrimSpace(answer))
	for _, opt := range options {
		if strings.ToLower(strings.TrimSpace(opt)) == want {
			return true
		}
	}
	return false
}
