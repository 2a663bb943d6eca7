package notes

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studychamp/studychamp/internal/llm"
)

// NoteSchema defines the JSON schema for study note generation responses.
var NoteSchema = &llm.Schema{
	Name:        "study-note",
	Description: "A structured study note for a topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A descriptive title for the note",
			},
			"sections": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"heading": map[string]any{
							"type":        "string",
							"description": "Short section heading",
						},
						"content": map[string]any{
							"type":        "string",
							"description": "Section body in plain prose, may use bullet lines",
						},
					},
					"required":             []any{"heading", "content"},
					"additionalProperties": false,
				},
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "A closing recap of the key points in a few sentences",
			},
		},
		"required":             []any{"title", "sections", "summary"},
		"additionalProperties": false,
	},
}

const noteSystemPrompt = `You are a study assistant that writes revision notes. Organize the topic into a handful of clearly headed sections that build on each other, then close with a short summary. Write for a student revising for an exam: precise, concrete, no filler.`

// Generator produces study notes via the model provider.
type Generator struct {
	provider llm.Provider
}

// NewGenerator creates a Generator backed by the given provider.
func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// noteOutput is the raw model response before conversion.
type noteOutput struct {
	Title    string `json:"title"`
	Sections []struct {
		Heading string `json:"heading"`
		Content string `json:"content"`
	} `json:"sections"`
	Summary string `json:"summary"`
}

// Generate asks the model for a structured note about topic.
func (g *Generator) Generate(ctx context.Context, topic string) (Note, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Note{}, fmt.Errorf("empty topic")
	}

	ctx = llm.WithPurpose(ctx, "note-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: noteSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Write study notes on: %s", topic)},
		},
		Schema:      NoteSchema,
		MaxTokens:   2048,
		Temperature: 0.5,
	})
	if err != nil {
		return Note{}, fmt.Errorf("generating note: %w", err)
	}

	var raw noteOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return Note{}, fmt.Errorf("parsing note response: %w", err)
	}
	if len(raw.Sections) == 0 {
		return Note{}, fmt.Errorf("model returned no sections for %q", topic)
	}

	note := Note{
		ID:        uuid.NewString(),
		Topic:     topic,
		Title:     raw.Title,
		Summary:   raw.Summary,
		CreatedAt: time.Now(),
	}
	if note.Title == "" {
		note.Title = topic
	}
	for _, s := range raw.Sections {
		note.Sections = append(note.Sections, Section{Heading: s.Heading, Content: s.Content})
	}

	return note, nil
}
