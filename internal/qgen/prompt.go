package qgen

import (
	"fmt"
	"strings"

	"github.com/studychamp/studychamp/internal/bank"
)

const systemPrompt = `You are a study assistant creating practice questions for students.

Rules:
- Generate a single question for the given subject, topic, and difficulty.
- Use plain ASCII text. No LaTeX, no Unicode symbols. Use / for fractions, * for multiplication, and standard operators.
- The question must be clear, self-contained, and answerable without external material.
- The correct answer must actually be correct.
- For multiple-choice, provide exactly 4 options where exactly one is correct. Distractors should reflect common mistakes, not random values.
- For numerical questions, the correct answer is the number as a string, e.g. "42" or "3.14".
- For short-answer and long-answer questions, the correct answer is a model answer containing the key terms a student should mention.
- Scale points with difficulty: easy questions are worth less than hard ones.
- Do not repeat any question from the "already asked" list.`

// GenerateInput carries everything needed to generate one question.
type GenerateInput struct {
	Subject    string
	Topic      string
	Difficulty bank.Difficulty

	// Type constrains the question type. Empty means the model chooses.
	Type bank.QuestionType

	// PriorQuestions are question texts already asked, for deduplication.
	PriorQuestions []string
}

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", input.Subject)
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	if input.Type != "" {
		fmt.Fprintf(&b, "Question type: %s\n", input.Type)
	} else {
		b.WriteString("Question type: your choice\n")
	}

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildDedup formats prior questions for the prompt, respecting the max limit.
// Returns "None" if there are no prior questions.
func buildDedup(priorQuestions []string, max int) string {
	if len(priorQuestions) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(priorQuestions) > max {
		priorQuestions = priorQuestions[len(priorQuestions)-max:]
	}

	var b strings.Builder
	for i, q := range priorQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
