package summary

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/studychamp/studychamp/internal/quiz"
)

func testResult() quiz.Result {
	return quiz.Result{
		CorrectAnswers:   3,
		TotalQuestions:   5,
		ScorePercentage:  62.5,
		TimeTakenMinutes: 4.5,
		CategoryBreakdown: map[string]quiz.CategoryStat{
			"Mathematics": {Correct: 2, Total: 3},
			"Physics":     {Correct: 1, Total: 2},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testResult(), "Calculus", "medium")
	if s.Title() != "Quiz Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testResult(), "Calculus", "medium")
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testResult(), "Calculus", "medium")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testResult(), "Calculus", "medium")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testResult(), "Calculus", "medium")
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
