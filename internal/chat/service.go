// Package chat implements the study tutor conversation loop. A Tutor
// keeps a rolling message history, sends the recent window plus a tutoring
// system prompt to the model, and mines each reply for study suggestions.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/studychamp/studychamp/internal/llm"
)

const systemPrompt = `You are StudyChamp, an expert educational assistant. Your role is to help students study effectively by:

1. Breaking down complex topics into digestible parts
2. Creating structured learning materials
3. Suggesting study approaches
4. Generating relevant practice questions
5. Recommending study schedules

Always provide:
- Clear explanations
- Study suggestions (topics to explore)
- Estimated learning time
- Difficulty assessment

Format your response to be engaging and educational.`

// contextWindow is how many prior messages are replayed with each request.
const contextWindow = 5

const (
	replyMaxTokens   = 1024
	replyTemperature = 0.7
)

// Tutor runs the chat conversation against a model provider.
type Tutor struct {
	provider llm.Provider
	history  []llm.Message
}

// NewTutor creates a Tutor backed by the given provider.
func NewTutor(provider llm.Provider) *Tutor {
	return &Tutor{provider: provider}
}

// Ask sends a student message to the model and returns the parsed reply.
// The message and reply are appended to the history so later calls carry
// the conversation forward.
func (t *Tutor) Ask(ctx context.Context, message string) (Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{}, fmt.Errorf("empty message")
	}

	messages := append(t.recent(), llm.Message{Role: llm.RoleUser, Content: message})

	resp, err := t.provider.Generate(llm.WithPurpose(ctx, "chat"), llm.Request{
		System:      systemPrompt,
		Messages:    messages,
		MaxTokens:   replyMaxTokens,
		Temperature: replyTemperature,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("generating tutor reply: %w", err)
	}

	content := string(resp.Content)
	t.history = append(t.history,
		llm.Message{Role: llm.RoleUser, Content: message},
		llm.Message{Role: llm.RoleAssistant, Content: content},
	)

	return parseReply(content), nil
}

// History returns a copy of the full conversation so far.
func (t *Tutor) History() []llm.Message {
	out := make([]llm.Message, len(t.history))
	copy(out, t.history)
	return out
}

// Reset clears the conversation history.
func (t *Tutor) Reset() {
	t.history = nil
}

// recent returns the trailing context window of the history.
func (t *Tutor) recent() []llm.Message {
	if len(t.history) <= contextWindow {
		return t.history
	}
	return t.history[len(t.history)-contextWindow:]
}
