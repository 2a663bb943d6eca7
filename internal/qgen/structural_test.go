package qgen

import (
	"testing"

	"github.com/studychamp/studychamp/internal/bank"
)

func validMCQ() *bank.Question {
	return &bank.Question{
		ID:            "q1",
		Text:          "What is 2 + 2?",
		Type:          bank.TypeMultipleChoice,
		Subject:       "Mathematics",
		Topic:         "arithmetic",
		Difficulty:    bank.DifficultyEasy,
		Options:       []string{"3", "4", "5", "22"},
		CorrectAnswer: "4",
		Explanation:   "Adding two and two gives four.",
		Points:        5,
	}
}

func TestStructuralValidatorAccepts(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validMCQ(), GenerateInput{}); err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}
}

func TestStructuralValidatorRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *bank.Question)
	}{
		{"empty text", func(q *bank.Question) { q.Text = "" }},
		{"empty answer", func(q *bank.Question) { q.CorrectAnswer = "" }},
		{"empty explanation", func(q *bank.Question) { q.Explanation = "" }},
		{"zero points", func(q *bank.Question) { q.Points = 0 }},
		{"negative points", func(q *bank.Question) { q.Points = -3 }},
		{"answer not an option", func(q *bank.Question) { q.CorrectAnswer = "6" }},
		{"too few options", func(q *bank.Question) { q.Options = []string{"4"} }},
		{"unknown type", func(q *bank.Question) { q.Type = "essay" }},
		{"unknown difficulty", func(q *bank.Question) { q.Difficulty = "extreme" }},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validMCQ()
			tt.mutate(q)
			verr := v.Validate(q, GenerateInput{})
			if verr == nil {
				t.Fatal("want validation error")
			}
			if !verr.Retryable {
				t.Error("structural failures should be retryable")
			}
		})
	}
}

func TestStructuralValidatorMCQAnswerCaseInsensitive(t *testing.T) {
	q := validMCQ()
	q.Options = []string{"Paris", "London", "Berlin", "Madrid"}
	q.CorrectAnswer = " paris "

	v := &StructuralValidator{}
	if err := v.Validate(q, GenerateInput{}); err != nil {
		t.Fatalf("normalized option match rejected: %v", err)
	}
}

func TestStructuralValidatorNumerical(t *testing.T) {
	q := validMCQ()
	q.Type = bank.TypeNumerical
	q.Options = nil
	q.CorrectAnswer = "3.14"

	v := &StructuralValidator{}
	if err := v.Validate(q, GenerateInput{}); err != nil {
		t.Fatalf("numerical question rejected: %v", err)
	}

	q.CorrectAnswer = "pi"
	if err := v.Validate(q, GenerateInput{}); err == nil {
		t.Fatal("want error for numerical answer without a number")
	}
}

func TestStructuralValidatorFreeText(t *testing.T) {
	q := validMCQ()
	q.Type = bank.TypeShortAnswer
	q.Options = nil
	q.CorrectAnswer = "Chlorophyll absorbs light for photosynthesis."

	v := &StructuralValidator{}
	if err := v.Validate(q, GenerateInput{}); err != nil {
		t.Fatalf("short-answer question rejected: %v", err)
	}
}
