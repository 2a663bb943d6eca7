package store

import (
	"context"
	"time"
)

// LLMRequestEventData captures the data for a single model request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestRecord is a stored model request event.
type LLMRequestRecord struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to model request events.
type EventRepo interface {
	// AppendLLMRequest records a model API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMRequests returns the most recent model request events,
	// newest first.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error)
}

// AttemptRecord is one completed quiz session.
type AttemptRecord struct {
	AttemptID       string
	Topic           string
	Difficulty      string
	Score           int
	TotalPoints     int
	CorrectCount    int
	TotalQuestions  int
	ScorePercentage float64
	TimeMinutes     float64
	StartedAt       time.Time
	FinishedAt      time.Time
}

// AnswerRecord is one graded answer within an attempt.
type AnswerRecord struct {
	AttemptID       string
	QuestionID      string
	QuestionText    string
	QuestionType    string
	Subject         string
	Topic           string
	CorrectAnswer   string
	SubmittedAnswer string
	Correct         bool
	Points          int
}

// SubjectStat aggregates answer history for one subject.
type SubjectStat struct {
	Correct int
	Total   int
}

// AttemptRepo persists quiz attempts and their answers.
type AttemptRepo interface {
	// SaveAttempt records a finished quiz session and its graded answers.
	SaveAttempt(ctx context.Context, attempt AttemptRecord, answers []AnswerRecord) error

	// RecentAttempts returns the most recent attempts, newest first.
	RecentAttempts(ctx context.Context, limit int) ([]AttemptRecord, error)

	// SubjectStats aggregates correct/total answer counts per subject
	// across all attempts.
	SubjectStats(ctx context.Context) (map[string]SubjectStat, error)
}

// CardRecord is a stored flashcard.
type CardRecord struct {
	ID        string
	Topic     string
	Question  string
	Answer    string
	Status    string
	CreatedAt time.Time
}

// CardRepo persists flashcards.
type CardRepo interface {
	// SaveCards inserts cards, skipping IDs that already exist.
	SaveCards(ctx context.Context, cards []CardRecord) error

	// ListCards returns all cards, oldest first.
	ListCards(ctx context.Context) ([]CardRecord, error)

	// UpdateStatus sets the review status of a card.
	UpdateStatus(ctx context.Context, id, status string) error

	// DeleteCard removes a card.
	DeleteCard(ctx context.Context, id string) error
}

// TaskRecord is a stored planner task.
type TaskRecord struct {
	ID        string
	Title     string
	DueDate   time.Time
	Completed bool
	CreatedAt time.Time
}

// TaskRepo persists planner tasks.
type TaskRepo interface {
	// SaveTask inserts or updates a task by ID.
	SaveTask(ctx context.Context, task TaskRecord) error

	// ListTasks returns all tasks ordered by due date.
	ListTasks(ctx context.Context) ([]TaskRecord, error)

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, id string) error
}
