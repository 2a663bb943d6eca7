package history

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/studychamp/studychamp/internal/router"
	"github.com/studychamp/studychamp/internal/screen"
	"github.com/studychamp/studychamp/internal/store"
	"github.com/studychamp/studychamp/internal/ui/layout"
	"github.com/studychamp/studychamp/internal/ui/theme"
)

type historyLoadedMsg struct {
	Attempts []store.AttemptRecord
	Stats    map[string]store.SubjectStat
	Err      error
}

// HistoryScreen displays past quiz attempts and per-subject accuracy.
type HistoryScreen struct {
	repo     store.AttemptRepo
	attempts []store.AttemptRecord
	stats    map[string]store.SubjectStat
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo store.AttemptRepo) *HistoryScreen {
	return &HistoryScreen{repo: repo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		attempts, err := s.repo.RecentAttempts(ctx, 50)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		stats, err := s.repo.SubjectStats(ctx)
		if err != nil {
			return historyLoadedMsg{Attempts: attempts, Stats: make(map[string]store.SubjectStat)}
		}

		return historyLoadedMsg{Attempts: attempts, Stats: stats}
	}
}

func (s *HistoryScreen) Title() string {
	return "Quiz History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, att := range s.attempts {
		dateStr := att.FinishedAt.Format("Jan 02, 2006")

		mins := int(att.TimeMinutes)
		secs := int(att.TimeMinutes*60) % 60
		durationStr := fmt.Sprintf("%d:%02d", mins, secs)

		topic := att.Topic
		if topic == "" {
			topic = "All topics"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %-20s %d/%d correct  %.0f%%",
			prefix, dateStr, durationStr, topic,
			att.CorrectCount, att.TotalQuestions, att.ScorePercentage)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	if len(s.stats) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Subject accuracy")))
		b.WriteString("\n")

		subjects := make([]string, 0, len(s.stats))
		for subject := range s.stats {
			subjects = append(subjects, subject)
		}
		sort.Strings(subjects)

		for _, subject := range subjects {
			stat := s.stats[subject]
			if stat.Total == 0 {
				continue
			}
			pct := float64(stat.Correct) / float64(stat.Total) * 100
			line := fmt.Sprintf("  %-16s %d/%d  %.0f%%", subject, stat.Correct, stat.Total, pct)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
