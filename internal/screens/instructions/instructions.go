// Package instructions implements the screen that explains the
// application and starts sessions.
package instructions

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/knownwords/internal/keys"
	"github.com/abhisek/knownwords/internal/prompt"
	"github.com/abhisek/knownwords/internal/router"
	"github.com/abhisek/knownwords/internal/screen"
	"github.com/abhisek/knownwords/internal/ui/layout"
	"github.com/abhisek/knownwords/internal/ui/theme"
)

const maxTextWidth = 76

// SessionFactory creates the screen of a new session.
type SessionFactory func() (screen.Screen, error)

// HistoryFactory creates the history screen. It may be nil.
type HistoryFactory func() screen.Screen

var historyKey = key.NewBinding(key.WithKeys("h", "H"), key.WithHelp("H", "History"))

// InstructionsScreen is the menu the session returns to.
type InstructionsScreen struct {
	keys       keys.KeyMap
	newSession SessionFactory
	history    HistoryFactory
	sessions   int
	errMsg     string

	// rendered caches the markdown for renderedWidth.
	rendered      string
	renderedWidth int
}

var _ screen.Screen = (*InstructionsScreen)(nil)
var _ screen.KeyHintProvider = (*InstructionsScreen)(nil)
var _ screen.Activator = (*InstructionsScreen)(nil)

// New creates an InstructionsScreen.
func New(km keys.KeyMap, newSession SessionFactory, history HistoryFactory) *InstructionsScreen {
	return &InstructionsScreen{
		keys:       km,
		newSession: newSession,
		history:    history,
	}
}

func (s *InstructionsScreen) Init() tea.Cmd {
	return nil
}

func (s *InstructionsScreen) Title() string {
	return "Instructions"
}

// Activate is called when a session returns to the menu.
func (s *InstructionsScreen) Activate() tea.Cmd {
	s.errMsg = ""
	return nil
}

// Sessions returns the number of sessions started from this screen.
func (s *InstructionsScreen) Sessions() int {
	return s.sessions
}

func (s *InstructionsScreen) KeyHints() []layout.KeyHint {
	hints := keys.Hints(s.keys.Select)
	hints[0].Description = "New session"
	if s.history != nil {
		hints = append(hints, keys.Hints(historyKey)...)
	}
	return append(hints, keys.Hints(s.keys.Exit)...)
}

func (s *InstructionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	if s.history != nil && key.Matches(k, historyKey) {
		h := s.history()
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: h} }
	}

	switch s.keys.Resolve(k) {
	case keys.ActionSelect:
		next, err := s.newSession()
		if err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.sessions++
		s.errMsg = ""
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	case keys.ActionExit:
		return s, tea.Quit
	}
	return s, nil
}

func (s *InstructionsScreen) View(width, height int) string {
	textWidth := min(width-4, maxTextWidth)
	if s.rendered == "" || s.renderedWidth != textWidth {
		s.rendered = renderMarkdown(prompt.Instructions(s.keys), textWidth)
		s.renderedWidth = textWidth
	}

	content := s.rendered
	if s.errMsg != "" {
		content += "\n\n" + theme.ErrorText.Render(prompt.Wrap(s.errMsg, textWidth))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
