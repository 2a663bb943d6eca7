package quizplay

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/studychamp/studychamp/internal/bank"
	"github.com/studychamp/studychamp/internal/quiz"
	"github.com/studychamp/studychamp/internal/router"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func mcqQuestion() bank.Question {
	return bank.Question{
		ID:            "q1",
		Text:          "What is 2 + 2?",
		Type:          bank.TypeMultipleChoice,
		Subject:       "Mathematics",
		Topic:         "Arithmetic",
		Difficulty:    bank.DifficultyEasy,
		Options:       []string{"3", "4", "5"},
		CorrectAnswer: "4",
		Explanation:   "Two plus two equals four.",
		Points:        10,
	}
}

func newTestScreen(t *testing.T, questions ...bank.Question) (*QuizScreen, *quiz.Session) {
	t.Helper()
	session, err := quiz.New(questions, nil)
	if err != nil {
		t.Fatalf("quiz.New: %v", err)
	}
	return New(session, nil, "Arithmetic", "easy"), session
}

func TestCorrectIndex(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		answer  string
		want    int
	}{
		{"exact match", []string{"3", "4", "5"}, "4", 1},
		{"case insensitive", []string{"Paris", "London"}, "paris", 0},
		{"whitespace trimmed", []string{"H2O", "CO2"}, " h2o ", 0},
		{"no match", []string{"3", "5"}, "4", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := bank.Question{Options: tt.options, CorrectAnswer: tt.answer}
			if got := correctIndex(q); got != tt.want {
				t.Errorf("correctIndex = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSubmitCorrectAnswerShowsFeedback(t *testing.T) {
	s, session := newTestScreen(t, mcqQuestion())

	if !s.mcActive {
		t.Fatal("expected multiple-choice widget for MCQ question")
	}

	s.submitAnswer("4")

	if !s.showingFeedback {
		t.Error("expected feedback after submit")
	}
	if !s.lastCorrect {
		t.Error("expected correct answer to be marked correct")
	}
	if session.Score != 10 {
		t.Errorf("Score = %d, want 10", session.Score)
	}
}

func TestFeedbackDoneCompletesSession(t *testing.T) {
	s, session := newTestScreen(t, mcqQuestion())

	s.submitAnswer("3")
	if s.lastCorrect {
		t.Error("expected wrong answer to be marked incorrect")
	}

	_, cmd := s.handleFeedbackDone()
	if !session.Completed {
		t.Error("expected session to complete after last question")
	}
	if cmd == nil {
		t.Fatal("expected a command to trigger the end-of-quiz flow")
	}
	if msg := cmd(); msg != (quizDoneMsg{}) {
		t.Errorf("expected quizDoneMsg, got %T", msg)
	}
}

func TestQuizDoneReplacesWithSummary(t *testing.T) {
	s, _ := newTestScreen(t, mcqQuestion())

	s.submitAnswer("4")
	s.handleFeedbackDone()

	_, cmd := s.handleQuizDone()
	if cmd == nil {
		t.Fatal("expected a replace command after the quiz completes")
	}
}

func TestAnswerRecords(t *testing.T) {
	numerical := bank.Question{
		ID:            "q2",
		Text:          "What is 6 / 2?",
		Type:          bank.TypeNumerical,
		Subject:       "Mathematics",
		Topic:         "Arithmetic",
		Difficulty:    bank.DifficultyEasy,
		CorrectAnswer: "3",
		Points:        5,
	}
	s, session := newTestScreen(t, mcqQuestion(), numerical)

	for range session.Questions {
		q, _ := session.CurrentQuestion()
		answer := q.CorrectAnswer
		if q.ID == "q2" {
			answer = "7" // wrong on purpose
		}
		if err := session.SubmitAnswer(answer); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
		session.Advance()
	}

	records := s.answerRecords()
	if len(records) != 2 {
		t.Fatalf("answerRecords length = %d, want 2", len(records))
	}
	for _, r := range records {
		switch r.QuestionID {
		case "q1":
			if !r.Correct {
				t.Error("expected q1 to be recorded correct")
			}
		case "q2":
			if r.Correct {
				t.Error("expected q2 to be recorded incorrect")
			}
			if r.SubmittedAnswer != "7" {
				t.Errorf("SubmittedAnswer = %q, want %q", r.SubmittedAnswer, "7")
			}
		default:
			t.Errorf("unexpected question ID %q", r.QuestionID)
		}
	}
}

func TestEscOpensQuitConfirm(t *testing.T) {
	s, session := newTestScreen(t, mcqQuestion())

	if !s.CapturesEsc() {
		t.Fatal("expected the quiz screen to capture Esc")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !s.showingQuitConfirm {
		t.Fatal("expected Esc to open the quit confirmation")
	}

	// N resumes the quiz; nothing is recorded or advanced.
	s.Update(keyPress('n'))
	if s.showingQuitConfirm {
		t.Error("expected N to dismiss the quit confirmation")
	}
	if session.Completed {
		t.Error("session must not complete on a dismissed confirmation")
	}
}

func TestQuitConfirmYesPopsWithoutRecording(t *testing.T) {
	s, _ := newTestScreen(t, mcqQuestion())

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected Y to leave the quiz")
	}
	if msg := cmd(); msg != (router.PopScreenMsg{}) {
		t.Errorf("expected PopScreenMsg, got %T", msg)
	}
}

func TestStatusShowsRunningScore(t *testing.T) {
	s, _ := newTestScreen(t, mcqQuestion())

	if got := s.Status(); !strings.Contains(got, "0/10") {
		t.Errorf("Status = %q, want running score 0/10", got)
	}

	s.submitAnswer("4")
	if got := s.Status(); !strings.Contains(got, "10/10") {
		t.Errorf("Status = %q, want running score 10/10", got)
	}
}

func TestKeyHintsPerState(t *testing.T) {
	s, _ := newTestScreen(t, mcqQuestion())

	if hints := s.KeyHints(); len(hints) != 2 {
		t.Errorf("active hints length = %d, want 2", len(hints))
	}

	s.showingFeedback = true
	if hints := s.KeyHints(); len(hints) != 1 {
		t.Errorf("feedback hints length = %d, want 1", len(hints))
	}

	s.showingFeedback = false
	s.showingQuitConfirm = true
	if hints := s.KeyHints(); len(hints) != 2 {
		t.Errorf("quit-confirm hints length = %d, want 2", len(hints))
	}
}
