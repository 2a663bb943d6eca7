package flashcards

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studychamp/studychamp/internal/llm"
)

// CardSchema defines the JSON schema for flashcard generation responses.
var CardSchema = &llm.Schema{
	Name:        "flashcard-set",
	Description: "A set of study flashcards for a topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"cards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The prompt side of the card, a single focused question",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The answer side of the card, concise but complete",
						},
					},
					"required":             []any{"question", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"cards"},
		"additionalProperties": false,
	},
}

const generatorSystemPrompt = `You are a study assistant that writes flashcards. Each card has one focused question and a concise, self-contained answer. Cover the most important facts and concepts of the requested topic. Do not number the cards or refer to other cards.`

// Generator produces new flashcards for a topic via the model provider.
type Generator struct {
	provider llm.Provider
}

// NewGenerator creates a Generator backed by the given provider.
func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// cardSetOutput is the raw model response before conversion.
type cardSetOutput struct {
	Cards []struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	} `json:"cards"`
}

// Generate asks the model for count flashcards about topic. Returned cards
// have fresh IDs and start in the new status.
func (g *Generator) Generate(ctx context.Context, topic string, count int) ([]Card, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("empty topic")
	}
	if count < 1 {
		count = 5
	}

	ctx = llm.WithPurpose(ctx, "flashcard-gen")

	req := llm.Request{
		System: generatorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Create %d flashcards about: %s", count, topic)},
		},
		Schema:      CardSchema,
		MaxTokens:   2048,
		Temperature: 0.7,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generating flashcards: %w", err)
	}

	var raw cardSetOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parsing flashcard response: %w", err)
	}
	if len(raw.Cards) == 0 {
		return nil, fmt.Errorf("model returned no cards for %q", topic)
	}

	now := time.Now()
	cards := make([]Card, 0, len(raw.Cards))
	for _, c := range raw.Cards {
		if strings.TrimSpace(c.Question) == "" || strings.TrimSpace(c.Answer) == "" {
			continue
		}
		cards = append(cards, Card{
			ID:        uuid.NewString(),
			Topic:     topic,
			Question:  c.Question,
			Answer:    c.Answer,
			Status:    StatusNew,
			CreatedAt: now,
		})
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("model returned only blank cards for %q", topic)
	}

	return cards, nil
}
