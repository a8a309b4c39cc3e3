package session

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/knownwords/internal/keys"
	"github.com/abhisek/knownwords/internal/prompt"
	sess "github.com/abhisek/knownwords/internal/session"
	"github.com/abhisek/knownwords/internal/ui/components"
	"github.com/abhisek/knownwords/internal/ui/layout"
	"github.com/abhisek/knownwords/internal/ui/theme"
)

const maxCardWidth = 72

func (s *SessionScreen) View(width, height int) string {
	cardWidth := min(width-4, maxCardWidth)
	textWidth := cardWidth - theme.Card.GetHorizontalFrameSize()
	if textWidth < 10 {
		textWidth = 10
	}

	var b strings.Builder
	b.WriteString(theme.Body.Render(prompt.Wrap(s.display.Frame(), textWidth)))

	if bar, ok := s.progressBar(textWidth); ok {
		b.WriteString("\n\n")
		b.WriteString(bar.View())
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Render(prompt.Wrap(s.errMsg, textWidth)))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Press any key to quit."))
	}

	card := theme.Card.Width(cardWidth).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

// progressBar shows the fetch progress, then the decisions made.
func (s *SessionScreen) progressBar(width int) (components.ProgressBar, bool) {
	switch s.machine.Phase() {
	case sess.PhaseFetching:
		fetched, total, known := s.machine.Progress()
		if !known || s.machine.FetchErr() != nil {
			return components.ProgressBar{}, false
		}
		return components.NewProgressBar("Fetched", fetched, total, false, width), true
	case sess.PhaseDeciding:
		sum := s.machine.Summary()
		return components.NewProgressBar("Decided", sum.Decided, sum.Fetched, true, width), true
	}
	return components.ProgressBar{}, false
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	km := s.keys
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "Any key", Description: "Quit"}}
	}
	switch s.machine.Phase() {
	case sess.PhaseSelectingLevel:
		return keys.Hints(km.Prev, km.Next, km.Select, km.Menu, km.Exit)
	case sess.PhaseFetching:
		if s.machine.FetchErr() != nil {
			return keys.Hints(km.Select, km.Menu, km.Exit)
		}
		return keys.Hints(km.Menu, km.Exit)
	case sess.PhaseDeciding:
		return keys.Hints(km.Accept, km.Reject, km.Prev, km.Next, km.Menu, km.Exit)
	case sess.PhaseSaving:
		return keys.Hints(km.SaveConfirm, km.SaveDecline, km.Menu, km.Exit)
	}
	return nil
}
