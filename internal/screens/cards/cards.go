package cards

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studychamp/studychamp/internal/flashcards"
	"github.com/studychamp/studychamp/internal/router"
	"github.com/studychamp/studychamp/internal/screen"
	"github.com/studychamp/studychamp/internal/store"
	"github.com/studychamp/studychamp/internal/ui/layout"
	"github.com/studychamp/studychamp/internal/ui/theme"
)

type cardsLoadedMsg struct {
	cards []flashcards.Card
	err   error
}

// CardsScreen is a flashcard review deck.
type CardsScreen struct {
	repo store.CardRepo

	cards   []flashcards.Card
	current int
	flipped bool
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*CardsScreen)(nil)
var _ screen.KeyHintProvider = (*CardsScreen)(nil)

// New creates a new CardsScreen.
func New(repo store.CardRepo) *CardsScreen {
	return &CardsScreen{repo: repo}
}

func (s *CardsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		records, err := s.repo.ListCards(ctx)
		if err != nil {
			return cardsLoadedMsg{err: err}
		}

		// First run: persist the starter deck.
		if len(records) == 0 {
			seed := flashcards.Seed()
			if err := s.repo.SaveCards(ctx, toRecords(seed)); err != nil {
				return cardsLoadedMsg{err: err}
			}
			return cardsLoadedMsg{cards: seed}
		}

		return cardsLoadedMsg{cards: fromRecords(records)}
	}
}

func (s *CardsScreen) Title() string {
	return "Flashcards"
}

func (s *CardsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "N/L/M", Description: "Status"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case cardsLoadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.cards = msg.cards
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *CardsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if len(s.cards) == 0 {
		return s, nil
	}

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case " ", "space", "enter":
		s.flipped = !s.flipped
	case "right":
		if s.current < len(s.cards)-1 {
			s.current++
			s.flipped = false
		}
	case "left":
		if s.current > 0 {
			s.current--
			s.flipped = false
		}
	case "n", "N":
		return s, s.setStatus(flashcards.StatusNew)
	case "l", "L":
		return s, s.setStatus(flashcards.StatusLearning)
	case "m", "M":
		return s, s.setStatus(flashcards.StatusMastered)
	}
	return s, nil
}

// setStatus updates the current card in memory and persists the change.
func (s *CardsScreen) setStatus(status flashcards.Status) tea.Cmd {
	card := &s.cards[s.current]
	card.Status = status
	id := card.ID
	return func() tea.Msg {
		_ = s.repo.UpdateStatus(context.Background(), id, string(status))
		return nil
	}
}

func (s *CardsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading cards...")
	}
	if len(s.cards) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No flashcards yet. Generate some with 'studychamp cards gen'.")
	}

	card := s.cards[s.current]

	var b strings.Builder

	counter := fmt.Sprintf("Card %d/%d   %s   [%s]",
		s.current+1, len(s.cards), card.Topic, card.Status)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter))
	b.WriteString("\n\n")

	face := card.Question
	label := "Q"
	faceColor := theme.Text
	if s.flipped {
		face = card.Answer
		label = "A"
		faceColor = theme.Secondary
	}

	cardBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(statusColor(card.Status)).
		Padding(1, 3).
		Width(min(width-8, 60)).
		Foreground(faceColor).
		Render(fmt.Sprintf("%s: %s", label, face))
	b.WriteString(cardBox)
	b.WriteString("\n\n")

	hint := "Space to reveal the answer"
	if s.flipped {
		hint = "N new   L learning   M mastered"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(hint))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func statusColor(status flashcards.Status) color.Color {
	switch status {
	case flashcards.StatusMastered:
		return theme.Success
	case flashcards.StatusLearning:
		return theme.Accent
	default:
		return theme.Border
	}
}

func toRecords(cards []flashcards.Card) []store.CardRecord {
	records := make([]store.CardRecord, 0, len(cards))
	for _, c := range cards {
		records = append(records, store.CardRecord{
			ID:        c.ID,
			Topic:     c.Topic,
			Question:  c.Question,
			Answer:    c.Answer,
			Status:    string(c.Status),
			CreatedAt: c.CreatedAt,
		})
	}
	return records
}

func fromRecords(records []store.CardRecord) []flashcards.Card {
	cards := make([]flashcards.Card, 0, len(records))
	for _, r := range records {
		cards = append(cards, flashcards.Card{
			ID:        r.ID,
			Topic:     r.Topic,
			Question:  r.Question,
			Answer:    r.Answer,
			Status:    flashcards.Status(r.Status),
			CreatedAt: r.CreatedAt,
		})
	}
	return cards
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
