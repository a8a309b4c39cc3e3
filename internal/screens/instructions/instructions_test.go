package instructions

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/knownwords/internal/keys"
	"github.com/abhisek/knownwords/internal/router"
	"github.com/abhisek/knownwords/internal/screen"
)

type stubScreen struct{ name string }

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return s.name }
func (s *stubScreen) Title() string                          { return s.name }

func newScreen(sessionErr error) *InstructionsScreen {
	return New(keys.DefaultKeyMap,
		func() (screen.Screen, error) {
			if sessionErr != nil {
				return nil, sessionErr
			}
			return &stubScreen{name: "session"}, nil
		},
		func() screen.Screen { return &stubScreen{name: "history"} },
	)
}

func pushed(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg")
	}
	return msg.Screen
}

func TestEnterStartsSession(t *testing.T) {
	s := newScreen(nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := pushed(t, cmd).Title(); got != "session" {
		t.Errorf("expected session screen, got %q", got)
	}

	// Each return to the menu can start another session.
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	pushed(t, cmd)
	if s.Sessions() != 2 {
		t.Errorf("expected 2 sessions, got %d", s.Sessions())
	}
}

func TestSessionErrorShown(t *testing.T) {
	s := newScreen(errors.New("level catalog is empty"))

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command on factory error")
	}
	if !strings.Contains(s.View(100, 40), "level catalog is empty") {
		t.Error("expected error in view")
	}

	s.Activate()
	if strings.Contains(s.View(100, 40), "level catalog is empty") {
		t.Error("expected error cleared on activate")
	}
}

func TestHistoryKey(t *testing.T) {
	s := newScreen(nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'h', Text: "h"})
	if got := pushed(t, cmd).Title(); got != "history" {
		t.Errorf("expected history screen, got %q", got)
	}
}

func TestHistoryHiddenWithoutFactory(t *testing.T) {
	s := New(keys.DefaultKeyMap, func() (screen.Screen, error) { return nil, nil }, nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'h', Text: "h"})
	if cmd != nil {
		t.Error("expected h to be ignored")
	}
	for _, h := range s.KeyHints() {
		if h.Description == "History" {
			t.Error("unexpected history hint")
		}
	}
}

func TestEscQuits(t *testing.T) {
	s := newScreen(nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestViewRendersInstructions(t *testing.T) {
	s := newScreen(nil)

	view := s.View(100, 40)
	for _, want := range []string{"Welcome", "SPACE", "ENTER"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}
