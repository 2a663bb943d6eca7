package notes

import (
	"context"
	"testing"

	"github.com/studychamp/studychamp/internal/llm"
)

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: []byte(`{
			"title": "Ohm's Law",
			"sections": [
				{"heading": "The Relationship", "content": "V = IR relates voltage, current, and resistance."},
				{"heading": "Applications", "content": "Used to size resistors in circuits."}
			],
			"summary": "Voltage equals current times resistance."
		}`),
	})
	g := NewGenerator(mock)

	note, err := g.Generate(context.Background(), "ohm's law")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if note.ID == "" {
		t.Error("note missing ID")
	}
	if note.Title != "Ohm's Law" {
		t.Errorf("Title = %q", note.Title)
	}
	if len(note.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(note.Sections))
	}
	if note.Summary == "" {
		t.Error("summary not carried over")
	}

	if mock.Calls[0].Schema != NoteSchema {
		t.Error("request did not carry the note schema")
	}
}

func TestGenerateFallsBackToTopicTitle(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: []byte(`{"title":"","sections":[{"heading":"A","content":"B"}],"summary":"C"}`),
	})
	g := NewGenerator(mock)

	note, err := g.Generate(context.Background(), "entropy")
	if err != nil {
		t.Fatal(err)
	}
	if note.Title != "entropy" {
		t.Errorf("Title = %q, want topic fallback", note.Title)
	}
}

func TestGenerateNoSections(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: []byte(`{"title":"T","sections":[],"summary":"S"}`),
	})
	g := NewGenerator(mock)

	if _, err := g.Generate(context.Background(), "topic"); err == nil {
		t.Fatal("want error for empty sections")
	}
}

func TestGenerateEmptyTopic(t *testing.T) {
	g := NewGenerator(llm.NewMockProvider())
	if _, err := g.Generate(context.Background(), " "); err == nil {
		t.Fatal("want error for empty topic")
	}
}
