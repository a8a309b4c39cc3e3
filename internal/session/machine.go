// Package session implements the word-classification session: level
// selection, the fetch of the level's word list, per-word decisions and
// the save confirmation.
//
// A Machine is not safe for concurrent use. Its host serializes key events
// and the fetch callbacks onto one goroutine and turns the returned
// effects into scheduled work.
package session

import (
	"github.com/abhisek/knownwords/internal/decision"
	"github.com/abhisek/knownwords/internal/keys"
	"github.com/abhisek/knownwords/internal/prompt"
)

// Renderer shows a prompt. A rate-limited request may be dropped.
type Renderer interface {
	Show(text string, rateLimited bool) bool
}

// Machine is the session state machine.
type Machine struct {
	cfg      Config
	renderer Renderer

	phase    Phase
	levelIdx int
	level    string

	// run identifies the current fetch; events from older runs are stale.
	run        uint64
	fetched    int
	total      int
	totalKnown bool
	fetchErr   error
	settling   bool

	words   []string
	cursor  int
	tracker *decision.Tracker
}

// New creates a Machine in PhaseSelectingLevel.
func New(cfg Config, r Renderer) (*Machine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.PreviewLimit <= 0 {
		cfg.PreviewLimit = DefaultPreviewLimit
	}
	return &Machine{
		cfg:      cfg,
		renderer: r,
		phase:    PhaseSelectingLevel,
		tracker:  decision.NewTracker(),
	}, nil
}

// Phase returns the active phase.
func (m *Machine) Phase() Phase { return m.phase }

// Level returns the level under the cursor while selecting, and the
// committed level afterwards.
func (m *Machine) Level() string {
	if m.phase == PhaseSelectingLevel {
		return m.cfg.Levels[m.levelIdx]
	}
	return m.level
}

// Cursor returns the index of the word in view.
func (m *Machine) Cursor() int { return m.cursor }

// Words returns the fetched words.
func (m *Machine) Words() []string { return m.words }

// Tracker returns the decisions recorded so far.
func (m *Machine) Tracker() *decision.Tracker { return m.tracker }

// Progress returns the fetch counters. known is false until the first
// page has arrived.
func (m *Machine) Progress() (fetched, total int, known bool) {
	return m.fetched, m.total, m.totalKnown
}

// FetchErr returns the error that stopped the current fetch, if any.
func (m *Machine) FetchErr() error { return m.fetchErr }

// Activate renders the prompt of the current phase, using the long level
// prompt when selecting.
func (m *Machine) Activate() {
	if m.phase == PhaseSelectingLevel {
		m.renderer.Show(prompt.LevelLong(m.cfg.Keys, m.Level()), false)
		return
	}
	m.render(false)
}

// HandleKey applies a key action. The menu and exit actions are accepted
// in every phase; everything else is dispatched by phase.
func (m *Machine) HandleKey(a keys.Action) Outcome {
	switch a {
	case keys.ActionNone:
		return Outcome{}
	case keys.ActionMenu:
		return signal(SignalMenu)
	case keys.ActionExit:
		return signal(SignalExit)
	}

	switch m.phase {
	case PhaseSelectingLevel:
		return m.selectingLevel(a)
	case PhaseFetching:
		return m.fetching(a)
	case PhaseDeciding:
		return m.deciding(a)
	case PhaseSaving:
		return m.saving(a)
	}
	return Outcome{}
}

func (m *Machine) selectingLevel(a keys.Action) Outcome {
	n := len(m.cfg.Levels)
	switch a {
	case keys.ActionNext:
		m.levelIdx = (m.levelIdx + 1) % n
	case keys.ActionPrev:
		m.levelIdx = (m.levelIdx - 1 + n) % n
	case keys.ActionSelect:
		m.level = m.cfg.Levels[m.levelIdx]
		return m.startFetch()
	default:
		return Outcome{}
	}
	m.renderer.Show(prompt.LevelShort(m.cfg.Keys, m.Level()), false)
	return Outcome{}
}

// fetching ignores navigation. Select restarts a fetch that has failed.
func (m *Machine) fetching(a keys.Action) Outcome {
	if a == keys.ActionSelect && m.fetchErr != nil {
		return m.startFetch()
	}
	return Outcome{}
}

func (m *Machine) startFetch() Outcome {
	m.phase = PhaseFetching
	m.run++
	m.fetched, m.total, m.totalKnown = 0, 0, false
	m.fetchErr = nil
	m.settling = false
	m.words = nil
	m.render(false)
	return effects(EffectFetch{Level: m.level, Run: m.run})
}

func (m *Machine) deciding(a keys.Action) Outcome {
	switch a {
	case keys.ActionAccept, keys.ActionReject:
		m.tracker.Record(m.words[m.cursor], a == keys.ActionAccept)
		if m.tracker.Decided() == len(m.words) {
			m.enterSaving()
			return Outcome{}
		}
		m.render(false)
		return effects(EffectAdvance{Delay: m.cfg.DecisionDelay, From: m.cursor})
	case keys.ActionNext:
		m.moveCursor(+1)
	case keys.ActionPrev:
		m.moveCursor(-1)
	default:
		return Outcome{}
	}
	m.render(false)
	return Outcome{}
}

func (m *Machine) saving(a keys.Action) Outcome {
	switch a {
	case keys.ActionSaveConfirm:
		return Outcome{
			Signal:  SignalExit,
			Effects: []Effect{EffectPersist{Words: m.tracker.AcceptedWords()}},
		}
	case keys.ActionSaveDecline:
		return signal(SignalExit)
	}
	return Outcome{}
}

// Advance is the auto-advance continuation. It moves the cursor one word
// forward if the cursor still points at from.
func (m *Machine) Advance(from int) {
	if m.phase != PhaseDeciding || m.cursor != from {
		return
	}
	m.moveCursor(+1)
	m.render(false)
}

func (m *Machine) moveCursor(delta int) {
	c := m.cursor + delta
	if c > len(m.words)-1 {
		c = len(m.words) - 1
	}
	if c < 0 {
		c = 0
	}
	m.cursor = c
}

// FetchProgress records that fetched of total words have arrived.
func (m *Machine) FetchProgress(run uint64, fetched, total int) {
	if !m.current(run) || m.settling {
		return
	}
	if m.totalKnown && fetched < m.fetched {
		return
	}
	m.fetched, m.total, m.totalKnown = fetched, total, true
	m.render(true)
}

// FetchComplete takes the fetched words and schedules the settle delay.
// A word listed more than once is kept at its first position only.
func (m *Machine) FetchComplete(run uint64, words []string) Outcome {
	if !m.current(run) || m.settling {
		return Outcome{}
	}
	m.settling = true
	m.words = unique(words)
	m.fetched, m.total, m.totalKnown = len(words), len(words), true
	m.render(false)
	return effects(EffectSettle{Delay: m.cfg.SettleDelay, Run: run})
}

func unique(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// FetchFailed shows err and offers a retry.
func (m *Machine) FetchFailed(run uint64, err error) {
	if !m.current(run) || m.settling {
		return
	}
	m.fetchErr = err
	m.render(false)
}

// EnterDeciding is the settle continuation. An empty word list goes
// straight to saving.
func (m *Machine) EnterDeciding(run uint64) {
	if !m.current(run) || !m.settling {
		return
	}
	m.settling = false
	m.tracker = decision.NewTracker()
	m.cursor = 0
	if len(m.words) == 0 {
		m.enterSaving()
		return
	}
	m.phase = PhaseDeciding
	m.render(false)
}

// current reports whether a fetch event belongs to the active fetch.
func (m *Machine) current(run uint64) bool {
	return m.phase == PhaseFetching && run == m.run && m.fetchErr == nil
}

func (m *Machine) enterSaving() {
	m.phase = PhaseSaving
	m.render(false)
}

// render shows the prompt of the current phase.
func (m *Machine) render(rateLimited bool) {
	m.renderer.Show(m.text(), rateLimited)
}

func (m *Machine) text() string {
	km := m.cfg.Keys
	switch m.phase {
	case PhaseSelectingLevel:
		return prompt.LevelShort(km, m.Level())
	case PhaseFetching:
		if m.fetchErr != nil {
			return prompt.FetchFailed(km, m.level, m.fetchErr)
		}
		return prompt.Fetching(m.level, m.fetched, m.total, m.totalKnown)
	case PhaseDeciding:
		word := m.words[m.cursor]
		return prompt.Decision(km, word, m.cursor, len(m.words), len(m.words)-m.tracker.Decided(), m.mark(word))
	case PhaseSaving:
		accepted := m.tracker.AcceptedWords()
		head := accepted[:min(len(accepted), m.cfg.PreviewLimit)]
		return prompt.Save(km, len(accepted), head)
	}
	return ""
}

func (m *Machine) mark(word string) string {
	accepted, ok := m.tracker.Decision(word)
	switch {
	case !ok:
		return ""
	case accepted:
		return "known"
	default:
		return "unknown"
	}
}
