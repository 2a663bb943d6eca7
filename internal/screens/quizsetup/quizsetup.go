package quizsetup

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studychamp/studychamp/internal/bank"
	"github.com/studychamp/studychamp/internal/qgen"
	"github.com/studychamp/studychamp/internal/quiz"
	"github.com/studychamp/studychamp/internal/router"
	"github.com/studychamp/studychamp/internal/screen"
	"github.com/studychamp/studychamp/internal/screens/quizplay"
	"github.com/studychamp/studychamp/internal/store"
	"github.com/studychamp/studychamp/internal/ui/components"
	"github.com/studychamp/studychamp/internal/ui/layout"
	"github.com/studychamp/studychamp/internal/ui/theme"
)

// questionCount is how many questions each quiz serves.
const questionCount = 5

type phase int

const (
	phaseTopic phase = iota
	phaseDifficulty
	phaseSource
	phaseGenerating
)

type topicChosenMsg struct{ topic string }

type difficultyChosenMsg struct{ difficulty bank.Difficulty }

type sourceChosenMsg struct{ ai bool }

type questionsReadyMsg struct {
	questions []bank.Question
	err       error
}

// SetupScreen walks the learner through topic, difficulty, and question
// source before handing off to the quiz screen.
type SetupScreen struct {
	st  *store.Store
	bk  *bank.Bank
	gen qgen.Generator

	phase      phase
	menu       components.Menu
	topic      string
	difficulty bank.Difficulty
	errMsg     string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a new SetupScreen.
func New(st *store.Store, bk *bank.Bank, gen qgen.Generator) *SetupScreen {
	s := &SetupScreen{st: st, bk: bk, gen: gen}
	s.menu = s.topicMenu()
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) topicMenu() components.Menu {
	choose := func(topic string) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return topicChosenMsg{topic: topic} }
		}
	}

	items := []components.MenuItem{
		{Label: "All topics", Action: choose("")},
	}
	for _, topic := range s.bk.Topics() {
		items = append(items, components.MenuItem{Label: topic, Action: choose(topic)})
	}
	return components.NewMenu(items)
}

func (s *SetupScreen) difficultyMenu() components.Menu {
	choose := func(d bank.Difficulty) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return difficultyChosenMsg{difficulty: d} }
		}
	}

	return components.NewMenu([]components.MenuItem{
		{Label: "Any difficulty", Action: choose("")},
		{Label: "Easy", Action: choose(bank.DifficultyEasy)},
		{Label: "Medium", Action: choose(bank.DifficultyMedium)},
		{Label: "Hard", Action: choose(bank.DifficultyHard)},
	})
}

func (s *SetupScreen) sourceMenu() components.Menu {
	choose := func(ai bool) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return sourceChosenMsg{ai: ai} }
		}
	}

	return components.NewMenu([]components.MenuItem{
		{Label: "Question bank", Action: choose(false)},
		{Label: "AI generated", Action: choose(true), Disabled: s.gen == nil},
	})
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case topicChosenMsg:
		s.topic = msg.topic
		s.phase = phaseDifficulty
		s.menu = s.difficultyMenu()
		return s, nil

	case difficultyChosenMsg:
		s.difficulty = msg.difficulty
		s.phase = phaseSource
		s.menu = s.sourceMenu()
		return s, nil

	case sourceChosenMsg:
		if msg.ai {
			s.phase = phaseGenerating
			return s, s.generateQuestions()
		}
		return s.startQuiz(s.bk.ByTopic(s.topic, s.difficulty, questionCount, bank.NewRand()))

	case questionsReadyMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			s.phase = phaseSource
			s.menu = s.sourceMenu()
			return s, nil
		}
		return s.startQuiz(msg.questions)

	case tea.KeyMsg:
		if s.phase == phaseGenerating {
			return s, nil
		}
		s.errMsg = ""
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// startQuiz builds a session over the chosen questions and replaces this
// screen with the quiz, so Esc from the quiz returns straight to home.
func (s *SetupScreen) startQuiz(questions []bank.Question) (screen.Screen, tea.Cmd) {
	if len(questions) == 0 {
		s.errMsg = "no questions match that topic and difficulty"
		return s, nil
	}

	session, err := quiz.New(questions, nil)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	var attemptRepo store.AttemptRepo
	if s.st != nil {
		attemptRepo = s.st.AttemptRepo()
	}

	play := quizplay.New(session, attemptRepo, s.topicLabel(), string(s.difficulty))
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: play} }
}

// generateQuestions asks the LLM for a fresh question set, feeding each
// generated question back in as dedup context for the next.
func (s *SetupScreen) generateQuestions() tea.Cmd {
	topic := s.topic
	if topic == "" {
		topic = "general knowledge"
	}
	difficulty := s.difficulty
	if difficulty == "" {
		difficulty = bank.DifficultyMedium
	}
	gen := s.gen

	return func() tea.Msg {
		ctx := context.Background()
		input := qgen.GenerateInput{
			Topic:      topic,
			Difficulty: difficulty,
		}

		var questions []bank.Question
		for i := 0; i < questionCount; i++ {
			q, err := gen.Generate(ctx, input)
			if err != nil {
				if len(questions) > 0 {
					break
				}
				return questionsReadyMsg{err: fmt.Errorf("generate questions: %w", err)}
			}
			questions = append(questions, *q)
			input.PriorQuestions = append(input.PriorQuestions, q.Text)
		}
		return questionsReadyMsg{questions: questions}
	}
}

func (s *SetupScreen) topicLabel() string {
	if s.topic == "" {
		return "All topics"
	}
	return s.topic
}

func (s *SetupScreen) View(width, height int) string {
	if s.phase == phaseGenerating {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Generating questions...")
	}

	var b strings.Builder

	prompt := map[phase]string{
		phaseTopic:      "What would you like to practice?",
		phaseDifficulty: "How hard should it be?",
		phaseSource:     "Where should the questions come from?",
	}[s.phase]

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(prompt))
	b.WriteString("\n\n")

	if s.topic != "" || s.phase > phaseTopic {
		chosen := fmt.Sprintf("Topic: %s", s.topicLabel())
		if s.phase > phaseDifficulty {
			d := string(s.difficulty)
			if d == "" {
				d = "any"
			}
			chosen += fmt.Sprintf("   Difficulty: %s", d)
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(chosen))
		b.WriteString("\n\n")
	}

	b.WriteString(s.menu.View())

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
