// Package flashcards holds the flashcard deck model: cards with a review
// status, a starter deck, and model-backed generation of new cards.
package flashcards

import (
	"strings"
	"time"
)

// Status tracks how well a card is known.
type Status string

const (
	StatusNew      Status = "new"
	StatusLearning Status = "learning"
	StatusMastered Status = "mastered"
)

// Valid reports whether s is a recognized status.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusLearning, StatusMastered:
		return true
	}
	return false
}

// Card is a single question/answer flashcard.
type Card struct {
	ID        string
	Topic     string
	Question  string
	Answer    string
	Status    Status
	CreatedAt time.Time
}

// FilterByTopic returns the cards whose topic, question, or answer contains
// the query, case-insensitively.
func FilterByTopic(cards []Card, topic string) []Card {
	q := strings.ToLower(topic)
	var out []Card
	for _, c := range cards {
		if strings.Contains(strings.ToLower(c.Topic), q) ||
			strings.Contains(strings.ToLower(c.Question), q) ||
			strings.Contains(strings.ToLower(c.Answer), q) {
			out = append(out, c)
		}
	}
	return out
}

// Seed returns the starter deck shown before the user has made any cards.
func Seed() []Card {
	now := time.Now()
	return []Card{
		{
			ID:        "1",
			Topic:     "Physics",
			Question:  "What is Newton's First Law of Motion?",
			Answer:    "An object at rest stays at rest, and an object in motion stays in motion, unless acted upon by an external force.",
			Status:    StatusNew,
			CreatedAt: now,
		},
		{
			ID:        "2",
			Topic:     "Physics",
			Question:  "What is the formula for Force?",
			Answer:    "Force = Mass x Acceleration (F = ma)",
			Status:    StatusLearning,
			CreatedAt: now,
		},
		{
			ID:        "3",
			Topic:     "Physics",
			Question:  "What is Newton's Third Law?",
			Answer:    "For every action, there is an equal and opposite reaction.",
			Status:    StatusNew,
			CreatedAt: now,
		},
		{
			ID:        "4",
			Topic:     "Mathematics",
			Question:  "What is the derivative of x^2?",
			Answer:    "2x",
			Status:    StatusMastered,
			CreatedAt: now,
		},
		{
			ID:        "5",
			Topic:     "Biology",
			Question:  "What process do plants use to convert sunlight to energy?",
			Answer:    "Photosynthesis, the process by which plants convert light energy, carbon dioxide, and water into glucose and oxygen.",
			Status:    StatusNew,
			CreatedAt: now,
		},
	}
}
