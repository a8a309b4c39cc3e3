package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/knownwords/internal/keys"
	"github.com/abhisek/knownwords/internal/router"
	"github.com/abhisek/knownwords/internal/screen"
	"github.com/abhisek/knownwords/internal/screens/history"
	"github.com/abhisek/knownwords/internal/screens/instructions"
	"github.com/abhisek/knownwords/internal/screens/welcome"
	"github.com/abhisek/knownwords/internal/store"
	"github.com/abhisek/knownwords/internal/ui/layout"
)

// Options holds the dependencies of the application.
type Options struct {
	Keys       keys.KeyMap
	NewSession instructions.SessionFactory
	EventRepo  store.EventRepo // optional; enables the history screen
	Logger     *zap.Logger
}

// statusProvider is implemented by screens that show a status in the
// header.
type statusProvider interface {
	Status() string
}

var quitHint = layout.KeyHint{Key: "Ctrl+C", Description: "Quit"}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome screen.
func newAppModel(opts Options) AppModel {
	var historyFactory instructions.HistoryFactory
	if opts.EventRepo != nil {
		historyFactory = func() screen.Screen { return history.New(opts.EventRepo) }
	}
	menu := instructions.New(opts.Keys, opts.NewSession, historyFactory)
	return AppModel{
		router: router.New(welcome.New(func() screen.Screen { return menu })),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes the frame for the current window size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
	}
	if sp, ok := active.(statusProvider); ok {
		status = sp.Status()
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(footerHints, hp.KeyHints()...)
	}
	footerHints = append(footerHints, quitHint)

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program. Screens still on the stack are
// deactivated when the program ends.
func Run(opts Options) error {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	m := newAppModel(opts)
	defer m.router.Close()

	p := tea.NewProgram(m)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		opts.Logger.Error("program failed", zap.Error(err))
		return err
	}
	return nil
}
