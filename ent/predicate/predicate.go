// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// Flashcard is the predicate function for flashcard builders.
type Flashcard func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PlannerTask is the predicate function for plannertask builders.
type PlannerTask func(*sql.Selector)

// QuizAttemptEvent is the predicate function for quizattemptevent builders.
type QuizAttemptEvent func(*sql.Selector)
