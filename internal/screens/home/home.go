package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studychamp/studychamp/internal/bank"
	"github.com/studychamp/studychamp/internal/flashcards"
	"github.com/studychamp/studychamp/internal/qgen"
	"github.com/studychamp/studychamp/internal/router"
	"github.com/studychamp/studychamp/internal/screen"
	"github.com/studychamp/studychamp/internal/screens/cards"
	"github.com/studychamp/studychamp/internal/screens/history"
	"github.com/studychamp/studychamp/internal/screens/quizsetup"
	"github.com/studychamp/studychamp/internal/store"
	"github.com/studychamp/studychamp/internal/ui/components"
	"github.com/studychamp/studychamp/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu          components.Menu
	attemptCount  int
	masteredCount int
	cardCount     int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(st *store.Store, bk *bank.Bank, gen qgen.Generator) *HomeScreen {
	// Load headline stats up front so the screen renders without a
	// loading state.
	var attemptCount, masteredCount, cardCount int
	if st != nil {
		ctx := context.Background()
		if attempts, err := st.AttemptRepo().RecentAttempts(ctx, 0); err == nil {
			attemptCount = len(attempts)
		}
		if records, err := st.CardRepo().ListCards(ctx); err == nil {
			cardCount = len(records)
			for _, c := range records {
				if c.Status == string(flashcards.StatusMastered) {
					masteredCount++
				}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "PRACTICE QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizsetup.New(st, bk, gen)}
			}
		}},
		{Label: "FLASHCARDS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: cards.New(st.CardRepo())}
			}
		}},
		{Label: "QUIZ HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(st.AttemptRepo())}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:          components.NewMenu(items),
		attemptCount:  attemptCount,
		masteredCount: masteredCount,
		cardCount:     cardCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, renderBanner())
	sections = append(sections, h.renderStatsBar())
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

var bannerLines = []string{
	`  ___ _            _      ___ _                       `,
	` / __| |_ _  _  __| |_  _/ __| |_  __ _ _ __  _ __    `,
	` \__ \  _| || |/ _' | || \__ \ ' \/ _' | '  \| '_ \   `,
	` |___/\__|\_,_|\__,_|\_, |___/_||_\__,_|_|_|_| .__/   `,
	`                     |__/                    |_|      `,
}

func renderBanner() string {
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(strings.Join(bannerLines, "\n"))
}

func (h *HomeScreen) renderStatsBar() string {
	stat := func(label string, value int) string {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label+": ") +
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("%d", value))
	}

	line := strings.Join([]string{
		stat("Quizzes", h.attemptCount),
		stat("Cards", h.cardCount),
		stat("Mastered", h.masteredCount),
	}, "   ")

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Render(line)
}
