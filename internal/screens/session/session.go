package session

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/knownwords/internal/fetch"
	"github.com/abhisek/knownwords/internal/keys"
	"github.com/abhisek/knownwords/internal/router"
	"github.com/abhisek/knownwords/internal/screen"
	sess "github.com/abhisek/knownwords/internal/session"
	"github.com/abhisek/knownwords/internal/store"
	"github.com/abhisek/knownwords/internal/ui/display"
	"github.com/abhisek/knownwords/internal/wordstore"
)

// eventBuffer bounds the fetch events queued ahead of the event loop.
const eventBuffer = 64

// Discoverer starts the fetch of a level's word list.
type Discoverer interface {
	Discover(ctx context.Context, level string, l fetch.Listener) error
}

// PersistFunc merges words into the file at path.
type PersistFunc func(path string, words []string) (int, error)

// Options holds the dependencies of a SessionScreen.
type Options struct {
	Fetcher        Discoverer
	Events         store.EventRepo // optional
	SaveFile       string
	Session        sess.Config
	RedrawInterval time.Duration
	Logger         *zap.Logger
	Persist        PersistFunc // defaults to wordstore.Persist
}

// SessionScreen implements screen.Screen for a word-classification session.
type SessionScreen struct {
	opts      Options
	keys      keys.KeyMap
	logger    *zap.Logger
	display   *display.Display
	machine   *sess.Machine
	sessionID string

	fetch    *activeFetch
	finished bool
	errMsg   string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.Deactivator = (*SessionScreen)(nil)

// New creates a SessionScreen with injected dependencies.
func New(opts Options) (*SessionScreen, error) {
	if opts.Persist == nil {
		opts.Persist = wordstore.Persist
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	d := display.New(opts.RedrawInterval)
	m, err := sess.New(opts.Session, d)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	return &SessionScreen{
		opts:      opts,
		keys:      opts.Session.Keys,
		logger:    opts.Logger.Named("session").With(zap.String("session_id", id)),
		display:   d,
		machine:   m,
		sessionID: id,
	}, nil
}

func (s *SessionScreen) Init() tea.Cmd {
	s.record(store.ActionStart, "")
	s.machine.Activate()
	s.display.Focus()
	return nil
}

func (s *SessionScreen) Title() string {
	return "Session"
}

// Status shows the level once it is committed.
func (s *SessionScreen) Status() string {
	if s.machine.Phase() == sess.PhaseSelectingLevel {
		return ""
	}
	return "Level " + s.machine.Level()
}

// Deactivate drops input focus and stops the running fetch.
func (s *SessionScreen) Deactivate() {
	s.display.Blur()
	s.stopFetch()
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return s.handleKey(msg)

	case fetchStartedMsg:
		if s.fetch == nil || msg.run != s.fetch.run {
			return s, nil
		}
		return s, s.fetch.listen()

	case fetchProgressMsg:
		if s.fetch == nil || msg.run != s.fetch.run {
			return s, nil
		}
		s.machine.FetchProgress(msg.run, msg.fetched, msg.total)
		return s, s.fetch.listen()

	case fetchCompleteMsg:
		if s.fetch == nil || msg.run != s.fetch.run {
			return s, nil
		}
		s.stopFetch()
		out := s.machine.FetchComplete(msg.run, msg.words)
		if len(out.Effects) > 0 {
			s.logger.Info("words fetched", zap.String("level", s.machine.Level()), zap.Int("words", len(msg.words)))
			s.record(store.ActionFetched, "")
		}
		return s, s.apply(out)

	case fetchFailedMsg:
		if s.fetch != nil && msg.run == s.fetch.run {
			s.stopFetch()
		}
		return s.handleFetchFailed(msg)

	case settleMsg:
		s.machine.EnterDeciding(msg.run)
		return s, nil

	case advanceMsg:
		s.machine.Advance(msg.from)
		return s, nil
	}

	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	action := s.keys.Resolve(msg)

	// A failed save waits for any key before leaving.
	if s.errMsg != "" {
		return s, tea.Quit
	}

	phase := s.machine.Phase()
	out := s.machine.HandleKey(action)

	switch out.Signal {
	case sess.SignalMenu:
		s.finish(store.ActionAbandoned)
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case sess.SignalExit:
		if err := s.persist(out); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		switch {
		case hasPersist(out):
			// recorded by persist
		case phase == sess.PhaseSaving && action == keys.ActionSaveDecline:
			s.finish(store.ActionDiscarded)
		default:
			s.finish(store.ActionAbandoned)
		}
		return s, tea.Quit
	}

	return s, s.apply(out)
}

func (s *SessionScreen) handleFetchFailed(msg fetchFailedMsg) (screen.Screen, tea.Cmd) {
	before := s.machine.FetchErr()
	s.machine.FetchFailed(msg.run, msg.err)
	if s.machine.FetchErr() != nil && before == nil {
		s.logger.Warn("fetch failed", zap.String("level", s.machine.Level()), zap.Error(msg.err))
		s.record(store.ActionFetchFailed, msg.err.Error())
	}
	return s, nil
}

// apply turns the effects of an outcome into commands.
func (s *SessionScreen) apply(out sess.Outcome) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range out.Effects {
		switch e := e.(type) {
		case sess.EffectFetch:
			cmds = append(cmds, s.startFetch(e))
		case sess.EffectSettle:
			cmds = append(cmds, tea.Tick(e.Delay, func(time.Time) tea.Msg {
				return settleMsg{run: e.Run}
			}))
		case sess.EffectAdvance:
			cmds = append(cmds, tea.Tick(e.Delay, func(time.Time) tea.Msg {
				return advanceMsg{from: e.From}
			}))
		}
	}
	return tea.Batch(cmds...)
}

// startFetch replaces any running fetch with a new run. The returned
// command blocks on the discovery request.
func (s *SessionScreen) startFetch(e sess.EffectFetch) tea.Cmd {
	s.stopFetch()

	ctx, cancel := context.WithCancel(context.Background())
	f := &activeFetch{run: e.Run, ctx: ctx, cancel: cancel, ch: make(chan tea.Msg, eventBuffer)}
	s.fetch = f

	l := runListener{run: e.Run, ctx: ctx, ch: f.ch}
	fetcher := s.opts.Fetcher
	return func() tea.Msg {
		if err := fetcher.Discover(ctx, e.Level, l); err != nil {
			return fetchFailedMsg{run: e.Run, err: err}
		}
		return fetchStartedMsg{run: e.Run}
	}
}

func (s *SessionScreen) stopFetch() {
	if s.fetch == nil {
		return
	}
	s.fetch.cancel()
	s.fetch = nil
}

// persist saves the accepted words when the outcome asks for it.
func (s *SessionScreen) persist(out sess.Outcome) error {
	for _, e := range out.Effects {
		p, ok := e.(sess.EffectPersist)
		if !ok {
			continue
		}
		total, err := s.opts.Persist(s.opts.SaveFile, p.Words)
		if err != nil {
			s.logger.Error("save failed", zap.String("file", s.opts.SaveFile), zap.Error(err))
			return fmt.Errorf("saving to %s: %w", s.opts.SaveFile, err)
		}
		s.logger.Info("words saved",
			zap.String("file", s.opts.SaveFile),
			zap.Int("saved", len(p.Words)),
			zap.Int("file_total", total),
		)
		s.finishSaved(len(p.Words))
	}
	return nil
}

func hasPersist(out sess.Outcome) bool {
	for _, e := range out.Effects {
		if _, ok := e.(sess.EffectPersist); ok {
			return true
		}
	}
	return false
}

func (s *SessionScreen) finish(action string) {
	if s.finished {
		return
	}
	s.finished = true
	s.stopFetch()
	s.record(action, "")
}

func (s *SessionScreen) finishSaved(n int) {
	if s.finished {
		return
	}
	s.finished = true
	s.stopFetch()
	s.recordEvent(store.SessionEventData{Action: store.ActionSaved, WordsSaved: n})
}

func (s *SessionScreen) record(action, errText string) {
	s.recordEvent(store.SessionEventData{Action: action, Error: errText})
}

// recordEvent appends a history event. History is best effort.
func (s *SessionScreen) recordEvent(data store.SessionEventData) {
	if s.opts.Events == nil {
		return
	}
	sum := s.machine.Summary()
	data.SessionID = s.sessionID
	data.Level = sum.Level
	data.WordsFetched = sum.Fetched
	data.WordsDecided = sum.Decided
	data.WordsAccepted = sum.Accepted
	if err := s.opts.Events.AppendSessionEvent(context.Background(), data); err != nil {
		s.logger.Warn("record session event", zap.String("action", data.Action), zap.Error(err))
	}
}
