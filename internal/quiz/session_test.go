package quiz

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/studychamp/studychamp/internal/bank"
	"github.com/studychamp/studychamp/internal/grader"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// twoQuestions is the pair used by the scoring scenarios: an MCQ worth 5
// and a numerical worth 10.
func twoQuestions() []bank.Question {
	return []bank.Question{
		{
			ID: "q1", Text: "Pick B", Type: bank.TypeMultipleChoice,
			Subject: "Mathematics", Topic: "Algebra",
			Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "B", Points: 5,
		},
		{
			ID: "q2", Text: "The answer to everything", Type: bank.TypeNumerical,
			Subject: "Physics", Topic: "Trivia",
			CorrectAnswer: "42", Points: 10,
		},
	}
}

// newOrdered creates a session and forces a known question order so the
// scenarios are deterministic regardless of shuffle.
func newOrdered(t *testing.T, qs []bank.Question) *Session {
	t.Helper()
	s, err := New(qs, testRand())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ordered := make([]bank.Question, len(qs))
	copy(ordered, qs)
	s.Questions = ordered
	return s
}

// answerFor returns the submission at the session's current question,
// keyed by question ID.
func answerFor(t *testing.T, s *Session, answers map[string]string) string {
	t.Helper()
	q, ok := s.CurrentQuestion()
	if !ok {
		t.Fatal("no current question")
	}
	a, ok := answers[q.ID]
	if !ok {
		t.Fatalf("no scripted answer for question %s", q.ID)
	}
	return a
}

func TestNewRejectsEmptyQuestionSet(t *testing.T) {
	if _, err := New(nil, testRand()); !errors.Is(err, ErrEmptyQuestionSet) {
		t.Fatalf("New(nil) error = %v, want ErrEmptyQuestionSet", err)
	}
	if _, err := New([]bank.Question{}, testRand()); !errors.Is(err, ErrEmptyQuestionSet) {
		t.Fatalf("New(empty) error = %v, want ErrEmptyQuestionSet", err)
	}
}

func TestNewInitializesSession(t *testing.T) {
	s, err := New(twoQuestions(), testRand())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if s.ID == "" {
		t.Error("session ID not assigned")
	}
	if s.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, want 0", s.CurrentIndex)
	}
	if s.Score != 0 {
		t.Errorf("Score = %d, want 0", s.Score)
	}
	if s.TotalPoints != 15 {
		t.Errorf("TotalPoints = %d, want 15", s.TotalPoints)
	}
	if s.Completed {
		t.Error("new session marked completed")
	}
	if s.StartTime.IsZero() {
		t.Error("StartTime not set")
	}
	if !s.EndTime.IsZero() {
		t.Error("EndTime set before completion")
	}
	if len(s.Questions) != 2 {
		t.Errorf("len(Questions) = %d, want 2", len(s.Questions))
	}
}

func TestScoringScenarioFullMarks(t *testing.T) {
	s := newOrdered(t, twoQuestions())

	// "b" for the MCQ: normalization handles the case difference.
	if err := s.SubmitAnswer("b"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if s.Score != 5 {
		t.Fatalf("score after Q1 = %d, want 5", s.Score)
	}
	s.Advance()

	// "42.005" is within the 0.01 tolerance of 42.
	if err := s.SubmitAnswer("42.005"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if s.Score != 15 {
		t.Fatalf("score after Q2 = %d, want 15", s.Score)
	}
	s.Advance()

	if !s.Completed {
		t.Fatal("session not completed after advancing past last question")
	}

	r := Summarize(s)
	if r.CorrectAnswers != 2 {
		t.Errorf("CorrectAnswers = %d, want 2", r.CorrectAnswers)
	}
	if r.TotalQuestions != 2 {
		t.Errorf("TotalQuestions = %d, want 2", r.TotalQuestions)
	}
	if r.ScorePercentage != 100 {
		t.Errorf("ScorePercentage = %v, want 100", r.ScorePercentage)
	}
	for _, subject := range []string{"Mathematics", "Physics"} {
		stat := r.CategoryBreakdown[subject]
		if stat.Correct != 1 || stat.Total != 1 {
			t.Errorf("%s breakdown = %+v, want {1 1}", subject, stat)
		}
	}
}

func TestScoringScenarioBoundaryMiss(t *testing.T) {
	s := newOrdered(t, twoQuestions())

	if err := s.SubmitAnswer("b"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	s.Advance()

	// 42 - 41.99 = 0.01, which is not strictly below the tolerance.
	if err := s.SubmitAnswer("41.99"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	s.Advance()

	if s.Score != 5 {
		t.Fatalf("score = %d, want 5 (Q1 only)", s.Score)
	}

	r := Summarize(s)
	if r.CorrectAnswers != 1 {
		t.Errorf("CorrectAnswers = %d, want 1", r.CorrectAnswers)
	}
	want := 100.0 * 5 / 15
	if r.ScorePercentage != want {
		t.Errorf("ScorePercentage = %v, want %v", r.ScorePercentage, want)
	}
	if stat := r.CategoryBreakdown["Physics"]; stat.Correct != 0 || stat.Total != 1 {
		t.Errorf("Physics breakdown = %+v, want {0 1}", stat)
	}
}

func TestResubmissionNeverDoubleCounts(t *testing.T) {
	s := newOrdered(t, twoQuestions())

	if err := s.SubmitAnswer("B"); err != nil {
		t.Fatal(err)
	}
	if s.Score != 5 {
		t.Fatalf("score = %d, want 5", s.Score)
	}

	// Overwrite with a wrong answer: score must reflect only the latest.
	if err := s.SubmitAnswer("A"); err != nil {
		t.Fatal(err)
	}
	if s.Score != 0 {
		t.Fatalf("score after resubmission = %d, want 0", s.Score)
	}

	// And back again: still no double-counting.
	if err := s.SubmitAnswer("b"); err != nil {
		t.Fatal(err)
	}
	if s.Score != 5 {
		t.Fatalf("score after second resubmission = %d, want 5", s.Score)
	}
	if len(s.Answers) != 1 {
		t.Fatalf("answer log has %d entries, want 1", len(s.Answers))
	}
}

func TestAdvanceCompletionAndIdempotence(t *testing.T) {
	qs := twoQuestions()
	s := newOrdered(t, qs)

	// Exactly N advances complete the session.
	for i := range qs {
		if s.Completed {
			t.Fatalf("completed early at question %d", i)
		}
		s.Advance()
	}
	if !s.Completed {
		t.Fatal("session not completed after N advances")
	}
	if s.EndTime.IsZero() {
		t.Fatal("EndTime not stamped on completion")
	}

	// The (N+1)th advance is a no-op.
	index, end := s.CurrentIndex, s.EndTime
	s.Advance()
	if !s.Completed || s.CurrentIndex != index || !s.EndTime.Equal(end) {
		t.Error("advance after completion must be a silent no-op")
	}
}

func TestSubmitAfterCompletionRejected(t *testing.T) {
	s := newOrdered(t, twoQuestions())
	s.Advance()
	s.Advance()

	if err := s.SubmitAnswer("late"); !errors.Is(err, ErrInvalidSessionState) {
		t.Fatalf("SubmitAnswer after completion = %v, want ErrInvalidSessionState", err)
	}
	if len(s.Answers) != 0 {
		t.Error("rejected submission still recorded an answer")
	}
}

func TestCurrentQuestionPastEnd(t *testing.T) {
	s := newOrdered(t, twoQuestions())
	s.Advance()
	s.Advance()

	if _, ok := s.CurrentQuestion(); ok {
		t.Error("CurrentQuestion should report none once completed")
	}
}

func TestProgressPercentage(t *testing.T) {
	s := newOrdered(t, twoQuestions())

	if p := s.Progress(); p.Percentage != 0 || p.Current != 0 || p.Total != 2 {
		t.Errorf("initial progress = %+v, want {0 2 0}", p)
	}

	s.Advance()
	if p := s.Progress(); p.Percentage != 50 {
		t.Errorf("mid progress = %v, want 50", p.Percentage)
	}

	s.Advance()
	if p := s.Progress(); p.Percentage != 100 {
		t.Errorf("final progress = %v, want 100", p.Percentage)
	}
}

func TestUnknownQuestionTypeSurfaces(t *testing.T) {
	qs := []bank.Question{
		{ID: "q1", Type: "essay", Subject: "Misc", CorrectAnswer: "x", Points: 5},
	}
	s := newOrdered(t, qs)

	err := s.SubmitAnswer("x")
	var unknownErr *grader.ErrUnknownQuestionType
	if !errors.As(err, &unknownErr) {
		t.Fatalf("want ErrUnknownQuestionType, got %v", err)
	}
	// The question scores zero, but the failure is reported distinctly
	// from a wrong answer.
	if s.Score != 0 {
		t.Errorf("score = %d, want 0", s.Score)
	}
	if _, recorded := s.Answers["q1"]; !recorded {
		t.Error("answer should still be recorded for the unknown-type question")
	}
}

func TestShuffleUsesInjectedSource(t *testing.T) {
	many := make([]bank.Question, 20)
	for i := range many {
		many[i] = bank.Question{ID: string(rune('a' + i)), Type: bank.TypeNumerical, CorrectAnswer: "1", Points: 1}
	}

	a, err := New(many, rand.New(rand.NewPCG(9, 9)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(many, rand.New(rand.NewPCG(9, 9)))
	if err != nil {
		t.Fatal(err)
	}

	for i := range a.Questions {
		if a.Questions[i].ID != b.Questions[i].ID {
			t.Fatal("same seed produced different question orders")
		}
	}
}

func TestSummarizeInProgressPreview(t *testing.T) {
	s := newOrdered(t, twoQuestions())
	if err := s.SubmitAnswer("b"); err != nil {
		t.Fatal(err)
	}

	r := Summarize(s)
	if r.CorrectAnswers != 1 {
		t.Errorf("CorrectAnswers = %d, want 1", r.CorrectAnswers)
	}
	if r.TimeTakenMinutes < 0 {
		t.Errorf("TimeTakenMinutes = %v, want >= 0", r.TimeTakenMinutes)
	}
}

func TestSummarizeElapsedTime(t *testing.T) {
	s := newOrdered(t, twoQuestions())
	s.StartTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return time.Date(2026, 3, 1, 10, 3, 0, 0, time.UTC) }
	s.Advance()
	s.Advance()

	r := Summarize(s)
	if r.TimeTakenMinutes != 3 {
		t.Errorf("TimeTakenMinutes = %v, want 3", r.TimeTakenMinutes)
	}
}

func TestSummarizeZeroPoints(t *testing.T) {
	qs := []bank.Question{{ID: "q1", Type: bank.TypeNumerical, Subject: "Misc", CorrectAnswer: "1", Points: 0}}
	s := newOrdered(t, qs)
	if err := s.SubmitAnswer("1"); err != nil {
		t.Fatal(err)
	}

	if r := Summarize(s); r.ScorePercentage != 0 {
		t.Errorf("ScorePercentage with zero total points = %v, want 0", r.ScorePercentage)
	}
}

func TestResultSubjectsSorted(t *testing.T) {
	s := newOrdered(t, twoQuestions())
	r := Summarize(s)
	subjects := r.Subjects()
	if len(subjects) != 2 || subjects[0] != "Mathematics" || subjects[1] != "Physics" {
		t.Errorf("Subjects() = %v, want [Mathematics Physics]", subjects)
	}
}
