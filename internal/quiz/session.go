// Package quiz owns the lifecycle of a single practice-quiz attempt: the
// fixed question order, the answer log, the running score, and the derived
// result. Sessions are driven by one caller at a time; concurrent use of
// the same session is not supported.
package quiz

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/studychamp/studychamp/internal/bank"
	"github.com/studychamp/studychamp/internal/grader"
)

var (
	// ErrEmptyQuestionSet is returned when a session is created with no
	// questions. The caller must supply at least one.
	ErrEmptyQuestionSet = errors.New("cannot start a quiz with no questions")

	// ErrInvalidSessionState is returned for operations that would corrupt
	// session state, such as submitting an answer after completion.
	ErrInvalidSessionState = errors.New("invalid session state")
)

// Session is one attempt at a fixed, shuffled set of questions.
//
// The zero value is not usable; create sessions with New. A session is
// mutated only through SubmitAnswer and Advance and becomes read-only once
// Completed is true.
type Session struct {
	// ID is the unique attempt identifier.
	ID string

	// Questions is the shuffled question order, fixed at creation.
	Questions []bank.Question

	// CurrentIndex points at the active question. Monotonically
	// non-decreasing; equals len(Questions) once the session completes.
	CurrentIndex int

	// Answers maps question ID to the latest submitted answer text.
	// Resubmitting before advancing overwrites the prior entry.
	Answers map[string]string

	// Score is the point sum of all currently-recorded correct answers.
	// It is recomputed from Answers on every submission, never
	// accumulated, so a replaced answer can never double-count.
	Score int

	// TotalPoints is the point sum over all questions, fixed at creation.
	TotalPoints int

	StartTime time.Time
	EndTime   time.Time

	// Completed becomes true exactly when CurrentIndex advances past the
	// last question. Terminal; there is no transition out.
	Completed bool

	// now is the clock, injectable for tests.
	now func() time.Time
}

// New creates a session over a Fisher-Yates shuffle of questions. Pass a
// seeded rng for a deterministic order, or nil for a time-seeded one.
func New(questions []bank.Question, rng *rand.Rand) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyQuestionSet
	}

	total := 0
	for _, q := range questions {
		total += q.Points
	}

	return &Session{
		ID:          uuid.NewString(),
		Questions:   bank.Shuffle(questions, rng),
		Answers:     make(map[string]string),
		TotalPoints: total,
		StartTime:   time.Now(),
		now:         time.Now,
	}, nil
}

// SubmitAnswer records answerText for the current question and recomputes
// the score. It does not advance the session; submitting again before
// Advance replaces the previous answer.
//
// Submitting after completion, or with the index somehow past the question
// list, returns ErrInvalidSessionState. A question type the grader does not
// recognize surfaces as a grading error; the question scores zero but the
// condition is reported rather than silently treated as a wrong answer.
func (s *Session) SubmitAnswer(answerText string) error {
	if s.Completed {
		return ErrInvalidSessionState
	}
	q, ok := s.CurrentQuestion()
	if !ok {
		return ErrInvalidSessionState
	}

	s.Answers[q.ID] = answerText

	score, err := s.recomputeScore()
	s.Score = score
	return err
}

// recomputeScore sums the points of every recorded answer that grades
// correct. Questions with an unrecognized type contribute nothing; the
// first such error is returned alongside the usable score.
func (s *Session) recomputeScore() (int, error) {
	var firstErr error
	score := 0
	for _, q := range s.Questions {
		answer, answered := s.Answers[q.ID]
		if !answered {
			continue
		}
		correct, err := grader.Grade(q, answer)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if correct {
			score += q.Points
		}
	}
	return score, firstErr
}

// Advance moves to the next question. Advancing past the last question
// completes the session and stamps EndTime. Advancing a completed session
// is a no-op, not an error.
func (s *Session) Advance() {
	if s.Completed {
		return
	}
	s.CurrentIndex++
	if s.CurrentIndex >= len(s.Questions) {
		s.Completed = true
		s.EndTime = s.clock()()
	}
}

// CurrentQuestion returns the question at the current index. The second
// return is false once the index has moved past the question list.
func (s *Session) CurrentQuestion() (bank.Question, bool) {
	if s.CurrentIndex >= len(s.Questions) {
		return bank.Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

// Progress describes how far through the quiz the learner is.
type Progress struct {
	Current    int
	Total      int
	Percentage float64
}

// Progress reports the current position as a fraction of the whole quiz:
// 0% at creation, 100% once completed.
func (s *Session) Progress() Progress {
	total := len(s.Questions)
	p := Progress{Current: s.CurrentIndex, Total: total}
	if total > 0 {
		p.Percentage = 100 * float64(s.CurrentIndex) / float64(total)
	}
	return p
}

func (s *Session) clock() func() time.Time {
	if s.now == nil {
		return time.Now
	}
	return s.now
}
