package bank

// QuestionType determines how an answer is graded.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeShortAnswer    QuestionType = "short-answer"
	TypeLongAnswer     QuestionType = "long-answer"
	TypeNumerical      QuestionType = "numerical"
)

// Difficulty is the declared difficulty of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is a single practice question. Questions are immutable once
// added to a Bank; grading never mutates CorrectAnswer or Points.
type Question struct {
	// ID uniquely identifies the question. Assigned at creation.
	ID string

	// Text is the prompt shown to the learner.
	Text string

	// Type selects the grading strategy.
	Type QuestionType

	// Subject and Topic are free-text classification strings used for
	// filtering and report grouping. They are not enumerated.
	Subject string
	Topic   string

	// Difficulty is easy, medium, or hard.
	Difficulty Difficulty

	// Options is the ordered list of choices. Present (and non-empty)
	// only for multiple-choice questions.
	Options []string

	// CorrectAnswer is the canonical answer. Its meaning depends on Type:
	// the literal choice text for multiple-choice, a string containing
	// numeric tokens for numerical, a free-text reference answer for
	// short/long answer.
	CorrectAnswer string

	// Explanation is optional supplementary text. Never used for grading.
	Explanation string

	// Points is the positive score contribution of a correct answer.
	Points int

	// TimeLimit is a suggested number of minutes. Advisory only; the
	// engine never enforces it.
	TimeLimit int
}
