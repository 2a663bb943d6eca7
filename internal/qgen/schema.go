package qgen

import "github.com/studychamp/studychamp/internal/llm"

// QuestionSchema defines the JSON schema for practice question generation
// responses.
var QuestionSchema = &llm.Schema{
	Name:        "practice-question",
	Description: "A single practice question with answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question shown to the student, in plain ASCII text",
			},
			"type": map[string]any{
				"type":        "string",
				"enum":        []any{"multiple-choice", "short-answer", "long-answer", "numerical"},
				"description": "How the student answers",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 options for multiple-choice. Empty array for other types.",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"description": "The correct answer. For multiple-choice: the text of the correct option. For numerical: the number as a string.",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "A short explanation of why the answer is correct",
			},
			"points": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     20,
				"description": "Score awarded for a correct answer, scaled to difficulty",
			},
			"time_limit": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     15,
				"description": "Suggested time to answer, in minutes",
			},
		},
		"required":             []any{"question", "type", "options", "correct_answer", "explanation", "points", "time_limit"},
		"additionalProperties": false,
	},
}
