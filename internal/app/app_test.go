package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/studychamp/studychamp/internal/router"
	"github.com/studychamp/studychamp/internal/screen"
)

type stubScreen struct {
	title   string
	sawKeys []string
}

func (s *stubScreen) Init() tea.Cmd { return nil }

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		s.sawKeys = append(s.sawKeys, kmsg.String())
	}
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.title }

func (s *stubScreen) Title() string { return s.title }

// capturingScreen consumes Esc itself, like the quiz screen's quit
// confirmation.
type capturingScreen struct {
	stubScreen
}

func (s *capturingScreen) CapturesEsc() bool { return true }

func TestEscPopsPlainScreen(t *testing.T) {
	m := AppModel{router: router.New(&stubScreen{title: "home"})}
	m.router.Push(&stubScreen{title: "child"})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if msg := cmd(); msg != (router.PopScreenMsg{}) {
		t.Errorf("expected PopScreenMsg, got %T", msg)
	}
}

func TestEscDeliveredToCapturingScreen(t *testing.T) {
	capture := &capturingScreen{stubScreen{title: "quiz"}}
	m := AppModel{router: router.New(&stubScreen{title: "home"})}
	m.router.Push(capture)

	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})

	if m.router.Depth() != 2 {
		t.Errorf("Depth = %d, want 2 (capturing screen must not be popped)", m.router.Depth())
	}
	if len(capture.sawKeys) != 1 || capture.sawKeys[0] != "esc" {
		t.Errorf("captured keys = %v, want [esc]", capture.sawKeys)
	}
}

func TestEscAtHomeIsNoop(t *testing.T) {
	m := AppModel{router: router.New(&stubScreen{title: "home"})}

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("expected no command for Esc on the bottom screen")
	}
	if m.router.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", m.router.Depth())
	}
}
