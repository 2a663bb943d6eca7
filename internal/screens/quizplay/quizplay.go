package quizplay

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/studychamp/studychamp/internal/bank"
	"github.com/studychamp/studychamp/internal/grader"
	"github.com/studychamp/studychamp/internal/quiz"
	"github.com/studychamp/studychamp/internal/router"
	"github.com/studychamp/studychamp/internal/screen"
	"github.com/studychamp/studychamp/internal/screens/summary"
	"github.com/studychamp/studychamp/internal/store"
	"github.com/studychamp/studychamp/internal/ui/components"
	"github.com/studychamp/studychamp/internal/ui/layout"
)

// QuizScreen drives one session from first question to summary.
type QuizScreen struct {
	session    *quiz.Session
	repo       store.AttemptRepo
	topic      string
	difficulty string

	input    components.TextInput
	mc       components.MultiChoice
	mcActive bool

	showingFeedback    bool
	showingQuitConfirm bool
	lastCorrect        bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.EscCapturer = (*QuizScreen)(nil)

// New creates a QuizScreen over an already-built session. The repo may be
// nil; the attempt is then simply not recorded.
func New(session *quiz.Session, repo store.AttemptRepo, topic, difficulty string) *QuizScreen {
	s := &QuizScreen{
		session:    session,
		repo:       repo,
		topic:      topic,
		difficulty: difficulty,
	}
	s.setupAnswerWidget()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.mcActive {
		return nil
	}
	return s.input.Init()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// Status shows the running score in the header.
func (s *QuizScreen) Status() string {
	return fmt.Sprintf("Score %d/%d", s.session.Score, s.session.TotalPoints)
}

// CapturesEsc keeps Esc on this screen: it opens the quit confirmation
// rather than leaving a quiz in progress.
func (s *QuizScreen) CapturesEsc() bool {
	return true
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

// setupAnswerWidget prepares the input widget for the current question.
func (s *QuizScreen) setupAnswerWidget() {
	q, ok := s.session.CurrentQuestion()
	if !ok {
		return
	}

	if q.Type == bank.TypeMultipleChoice {
		s.mcActive = true
		s.mc = components.NewMultiChoice(q.Text, q.Options, correctIndex(q))
		return
	}

	s.mcActive = false
	placeholder := "Type your answer..."
	if q.Type == bank.TypeNumerical {
		placeholder = "Enter a number..."
	}
	s.input = components.NewTextInput(placeholder, q.Type == bank.TypeNumerical, 60)
}

// correctIndex locates the correct option, matching the grader's
// normalization. Returns -1 when no option matches.
func correctIndex(q bank.Question) int {
	want := strings.ToLower(strings.TrimSpace(q.CorrectAnswer))
	for i, opt := range q.Options {
		if strings.ToLower(strings.TrimSpace(opt)) == want {
			return i
		}
	}
	return -1
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case quizDoneMsg:
		return s.handleQuizDone()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if !s.mcActive && !s.showingFeedback && !s.showingQuitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		if s.mcActive {
			var cmd tea.Cmd
			s.mc, cmd = s.mc.Update(msg)
			if s.mc.Submitted {
				return s.submitAnswer(s.mc.Options[s.mc.ChosenIndex])
			}
			return s, cmd
		}
		answer := strings.TrimSpace(s.input.Value())
		if answer == "" {
			return s, nil
		}
		return s.submitAnswer(answer)
	}

	if s.mcActive {
		// Number keys pick and submit in one stroke.
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(s.mc.Options) {
				s.mc.Selected = idx
				s.mc.Submitted = true
				s.mc.ChosenIndex = idx
				return s.submitAnswer(s.mc.Options[idx])
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer records the answer and switches to feedback.
func (s *QuizScreen) submitAnswer(answer string) (screen.Screen, tea.Cmd) {
	q, ok := s.session.CurrentQuestion()
	if !ok {
		return s, nil
	}

	correct, _ := grader.Grade(q, answer)
	s.lastCorrect = correct
	if !s.mcActive {
		s.input.Submit(correct)
	}

	if err := s.session.SubmitAnswer(answer); err != nil {
		// An unknown question type grades as zero; the quiz continues.
		s.lastCorrect = false
	}

	s.showingFeedback = true
	return s, nil
}

func (s *QuizScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false
	s.session.Advance()

	if s.session.Completed {
		return s, func() tea.Msg { return quizDoneMsg{} }
	}

	s.setupAnswerWidget()
	return s, s.Init()
}

func (s *QuizScreen) handleQuizDone() (screen.Screen, tea.Cmd) {
	result := quiz.Summarize(s.session)

	if s.repo != nil {
		_ = s.repo.SaveAttempt(context.Background(), s.attemptRecord(result), s.answerRecords())
	}

	sum := summary.New(result, s.topic, s.difficulty)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: sum} }
}

func (s *QuizScreen) attemptRecord(result quiz.Result) store.AttemptRecord {
	return store.AttemptRecord{
		AttemptID:       s.session.ID,
		Topic:           s.topic,
		Difficulty:      s.difficulty,
		Score:           s.session.Score,
		TotalPoints:     s.session.TotalPoints,
		CorrectCount:    result.CorrectAnswers,
		TotalQuestions:  result.TotalQuestions,
		ScorePercentage: result.ScorePercentage,
		TimeMinutes:     result.TimeTakenMinutes,
		StartedAt:       s.session.StartTime,
		FinishedAt:      s.session.EndTime,
	}
}

func (s *QuizScreen) answerRecords() []store.AnswerRecord {
	records := make([]store.AnswerRecord, 0, len(s.session.Questions))
	for _, q := range s.session.Questions {
		answer, answered := s.session.Answers[q.ID]
		if !answered {
			continue
		}
		correct, _ := grader.Grade(q, answer)
		records = append(records, store.AnswerRecord{
			AttemptID:       s.session.ID,
			QuestionID:      q.ID,
			QuestionText:    q.Text,
			QuestionType:    string(q.Type),
			Subject:         q.Subject,
			Topic:           q.Topic,
			CorrectAnswer:   q.CorrectAnswer,
			SubmittedAnswer: answer,
			Correct:         correct,
			Points:          q.Points,
		})
	}
	return records
}
