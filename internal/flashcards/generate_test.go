package flashcards

import (
	"context"
	"testing"

	"github.com/studychamp/studychamp/internal/llm"
)

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: []byte(`{"cards":[
			{"question":"What is osmosis?","answer":"Diffusion of water across a membrane."},
			{"question":"What is a solute?","answer":"The substance dissolved in a solution."}
		]}`),
	})
	g := NewGenerator(mock)

	cards, err := g.Generate(context.Background(), "osmosis", 2)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(cards))
	}
	for _, c := range cards {
		if c.ID == "" {
			t.Error("card missing ID")
		}
		if c.Topic != "osmosis" {
			t.Errorf("Topic = %q, want osmosis", c.Topic)
		}
		if c.Status != StatusNew {
			t.Errorf("Status = %q, want new", c.Status)
		}
	}

	req := mock.Calls[0]
	if req.Schema != CardSchema {
		t.Error("request did not carry the flashcard schema")
	}
}

func TestGenerateSkipsBlankCards(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: []byte(`{"cards":[
			{"question":"","answer":"orphan answer"},
			{"question":"Kept?","answer":"Yes."}
		]}`),
	})
	g := NewGenerator(mock)

	cards, err := g.Generate(context.Background(), "anything", 2)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(cards))
	}
	if cards[0].Question != "Kept?" {
		t.Errorf("kept card = %q", cards[0].Question)
	}
}

func TestGenerateEmptyTopic(t *testing.T) {
	g := NewGenerator(llm.NewMockProvider())
	if _, err := g.Generate(context.Background(), "  ", 3); err == nil {
		t.Fatal("want error for empty topic")
	}
}

func TestGenerateNoCards(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: []byte(`{"cards":[]}`)})
	g := NewGenerator(mock)

	if _, err := g.Generate(context.Background(), "topic", 3); err == nil {
		t.Fatal("want error when model returns no cards")
	}
}
