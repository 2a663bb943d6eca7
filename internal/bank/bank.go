package bank

import (
	"math/rand/v2"
	"strings"
)

// Bank is the in-memory catalogue of practice questions. The catalogue is
// read-only after construction: sessions borrow subsets but never mutate it.
type Bank struct {
	questions []Question
}

// New creates a Bank holding the given questions.
func New(questions []Question) *Bank {
	qs := make([]Question, len(questions))
	copy(qs, questions)
	return &Bank{questions: qs}
}

// All returns the full catalogue in insertion order.
func (b *Bank) All() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// ByTopic returns up to count questions whose Topic or Subject
// case-insensitively contains topic. A non-empty difficulty restricts
// matches to that exact difficulty. When fewer than count questions match,
// the result is backfilled with questions sharing a matched question's
// Subject, without duplicates, until count is reached or the catalogue is
// exhausted. The candidate set is shuffled before truncation, so callers
// get a random selection. Insufficient matches are not an error; the
// result is simply shorter.
func (b *Bank) ByTopic(topic string, difficulty Difficulty, count int, rng *rand.Rand) []Question {
	needle := strings.ToLower(topic)

	var matched []Question
	for _, q := range b.questions {
		if strings.Contains(strings.ToLower(q.Topic), needle) ||
			strings.Contains(strings.ToLower(q.Subject), needle) {
			matched = append(matched, q)
		}
	}

	if difficulty != "" {
		var filtered []Question
		for _, q := range matched {
			if q.Difficulty == difficulty {
				filtered = append(filtered, q)
			}
		}
		matched = filtered
	}

	if len(matched) < count {
		matched = b.backfillBySubject(matched, count)
	}

	shuffled := Shuffle(matched, rng)
	if len(shuffled) > count {
		shuffled = shuffled[:count]
	}
	return shuffled
}

// backfillBySubject extends matched with catalogue questions that share a
// Subject with at least one matched question, skipping duplicates.
func (b *Bank) backfillBySubject(matched []Question, count int) []Question {
	subjects := make(map[string]bool)
	included := make(map[string]bool)
	for _, q := range matched {
		subjects[q.Subject] = true
		included[q.ID] = true
	}

	for _, q := range b.questions {
		if len(matched) >= count {
			break
		}
		if included[q.ID] || !subjects[q.Subject] {
			continue
		}
		matched = append(matched, q)
		included[q.ID] = true
	}
	return matched
}

// ByDifficulty returns all questions with the given difficulty.
func (b *Bank) ByDifficulty(d Difficulty) []Question {
	var out []Question
	for _, q := range b.questions {
		if q.Difficulty == d {
			out = append(out, q)
		}
	}
	return out
}

// Subjects returns the distinct subjects across the catalogue.
func (b *Bank) Subjects() []string {
	return b.distinct(func(q Question) string { return q.Subject })
}

// Topics returns the distinct topics across the catalogue.
func (b *Bank) Topics() []string {
	return b.distinct(func(q Question) string { return q.Topic })
}

func (b *Bank) distinct(key func(Question) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range b.questions {
		k := key(q)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
