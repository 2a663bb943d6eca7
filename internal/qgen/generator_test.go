package qgen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/studychamp/studychamp/internal/bank"
	"github.com/studychamp/studychamp/internal/llm"
)

func mcqResponse(text string) llm.MockResponse {
	return llm.MockResponse{
		Content: []byte(`{
			"question": "` + text + `",
			"type": "multiple-choice",
			"options": ["3", "4", "5", "22"],
			"correct_answer": "4",
			"explanation": "Adding two and two gives four.",
			"points": 5,
			"time_limit": 2
		}`),
	}
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(mcqResponse("What is 2 + 2?"))
	g := New(mock, DefaultConfig())

	input := GenerateInput{
		Subject:    "Mathematics",
		Topic:      "arithmetic",
		Difficulty: bank.DifficultyEasy,
	}
	q, err := g.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if q.ID == "" {
		t.Error("question missing ID")
	}
	if q.Subject != "Mathematics" || q.Topic != "arithmetic" {
		t.Errorf("classification = %q/%q", q.Subject, q.Topic)
	}
	if q.Difficulty != bank.DifficultyEasy {
		t.Errorf("Difficulty = %q", q.Difficulty)
	}
	if q.Type != bank.TypeMultipleChoice {
		t.Errorf("Type = %q", q.Type)
	}
	if q.Points != 5 || q.TimeLimit != 2 {
		t.Errorf("Points/TimeLimit = %d/%d", q.Points, q.TimeLimit)
	}

	req := mock.Calls[0]
	if req.Schema != QuestionSchema {
		t.Error("request did not carry the question schema")
	}
}

func TestGenerateValidationFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: []byte(`{
			"question": "Broken",
			"type": "multiple-choice",
			"options": ["a", "b", "c", "d"],
			"correct_answer": "e",
			"explanation": "The answer is not an option.",
			"points": 5,
			"time_limit": 2
		}`),
	})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Difficulty: bank.DifficultyEasy})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if verr.Validator != "structural" {
		t.Errorf("Validator = %q", verr.Validator)
	}
}

func TestGenerateProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), GenerateInput{}); err == nil {
		t.Fatal("want error from provider")
	}
}

func TestGenerateSetFeedsDedup(t *testing.T) {
	mock := llm.NewMockProvider(
		mcqResponse("First question?"),
		mcqResponse("Second question?"),
		mcqResponse("Third question?"),
	)
	g := New(mock, DefaultConfig())

	qs, err := g.GenerateSet(context.Background(), GenerateInput{
		Subject:    "Mathematics",
		Topic:      "arithmetic",
		Difficulty: bank.DifficultyEasy,
	}, 3)
	if err != nil {
		t.Fatalf("GenerateSet: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("got %d questions, want 3", len(qs))
	}

	// The third request must list the first two questions for dedup.
	third := mock.Calls[2].Messages[0].Content
	if !strings.Contains(third, "First question?") || !strings.Contains(third, "Second question?") {
		t.Errorf("dedup list missing prior questions:\n%s", third)
	}
}

func TestGenerateSetStopsOnError(t *testing.T) {
	mock := llm.NewMockProvider(
		mcqResponse("Only question?"),
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	g := New(mock, DefaultConfig())

	qs, err := g.GenerateSet(context.Background(), GenerateInput{Difficulty: bank.DifficultyEasy}, 3)
	if err == nil {
		t.Fatal("want error")
	}
	if len(qs) != 1 {
		t.Errorf("got %d questions before failure, want 1", len(qs))
	}
}
