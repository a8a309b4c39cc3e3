package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/knownwords/internal/router"
	"github.com/abhisek/knownwords/internal/screen"
	"github.com/abhisek/knownwords/internal/store"
	"github.com/abhisek/knownwords/internal/ui/layout"
	"github.com/abhisek/knownwords/internal/ui/theme"
)

// DefaultLimit is the number of sessions listed.
const DefaultLimit = 50

type historyLoadedMsg struct {
	Sessions []store.SessionRecord
	Totals   store.Totals
	Err      error
}

// HistoryScreen lists past sessions and their outcomes.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionRecord
	totals    store.Totals
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := repo.RecentSessions(ctx, DefaultLimit)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		totals, err := repo.Totals(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Sessions: sessions, Totals: totals}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
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
			s.sessions = msg.Sessions
			s.totals = msg.Totals
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc", "space":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
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
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(fmt.Sprintf("%d sessions  %d saves  %d words saved",
			s.totals.Sessions, s.totals.Saves, s.totals.WordsSaved))))
	b.WriteString("\n\n")

	for i, rec := range s.sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		level := rec.Level
		if level == "" {
			level = "--"
		}
		line := fmt.Sprintf("%s%s  %-2s  %s",
			prefix, rec.Started.Format("Jan 02, 2006 15:04"), level,
			lipgloss.NewStyle().Foreground(outcomeColor(rec.Outcome)).Render(outcomeLabel(rec.Outcome)))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    %d fetched  %d known  %d saved  %s",
				rec.Fetched, rec.Accepted, rec.Saved, formatDuration(rec))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func formatDuration(rec store.SessionRecord) string {
	d := rec.Ended.Sub(rec.Started)
	if d < 0 {
		d = 0
	}
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func outcomeLabel(outcome string) string {
	switch outcome {
	case store.ActionSaved:
		return "saved"
	case store.ActionDiscarded:
		return "discarded"
	case store.ActionAbandoned:
		return "abandoned"
	case store.ActionFetchFailed:
		return "fetch failed"
	default:
		return "in progress"
	}
}

func outcomeColor(outcome string) color.Color {
	switch outcome {
	case store.ActionSaved:
		return theme.Success
	case store.ActionFetchFailed:
		return theme.Error
	case store.ActionDiscarded, store.ActionAbandoned:
		return theme.TextDim
	default:
		return theme.Accent
	}
}
