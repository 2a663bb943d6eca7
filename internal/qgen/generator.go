package qgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/studychamp/studychamp/internal/bank"
	"github.com/studychamp/studychamp/internal/llm"
)

// Generator produces validated practice questions.
type Generator interface {
	Generate(ctx context.Context, input GenerateInput) (*bank.Question, error)
}

// LLMGenerator implements Generator using the model provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw model response before validation.
type questionOutput struct {
	Question      string   `json:"question"`
	Type          string   `json:"type"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Points        int      `json:"points"`
	TimeLimit     int      `json:"time_limit"`
}

// Generate produces a single question for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*bank.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}

	q := &bank.Question{
		ID:            uuid.NewString(),
		Text:          raw.Question,
		Type:          bank.QuestionType(raw.Type),
		Subject:       input.Subject,
		Topic:         input.Topic,
		Difficulty:    input.Difficulty,
		Options:       raw.Options,
		CorrectAnswer: raw.CorrectAnswer,
		Explanation:   raw.Explanation,
		Points:        raw.Points,
		TimeLimit:     raw.TimeLimit,
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}

// GenerateSet produces count questions, feeding each generated question
// back into the dedup list for the next one.
func (g *LLMGenerator) GenerateSet(ctx context.Context, input GenerateInput, count int) ([]bank.Question, error) {
	if count < 1 {
		count = 1
	}

	prior := append([]string(nil), input.PriorQuestions...)
	out := make([]bank.Question, 0, count)
	for range count {
		in := input
		in.PriorQuestions = prior
		q, err := g.Generate(ctx, in)
		if err != nil {
			return out, err
		}
		out = append(out, *q)
		prior = append(prior, q.Text)
	}
	return out, nil
}
