package session

import "time"

// Signal tells the router what to do after a key event.
type Signal int

const (
	SignalNone Signal = iota
	SignalMenu        // Return to the instructions screen
	SignalExit        // Leave the application
)

// Effect is work the machine asks its host to perform. Effects that need
// time to pass come back into the machine through a continuation.
type Effect interface {
	effect()
}

// EffectFetch starts fetching the words of Level. Events of the fetch are
// fed back tagged with Run.
type EffectFetch struct {
	Level string
	Run   uint64
}

// EffectSettle schedules EnterDeciding(Run) after Delay.
type EffectSettle struct {
	Delay time.Duration
	Run   uint64
}

// EffectAdvance schedules Advance(From) after Delay.
type EffectAdvance struct {
	Delay time.Duration
	From  int
}

// EffectPersist saves Words.
type EffectPersist struct {
	Words []string
}

func (EffectFetch) effect()   {}
func (EffectSettle) effect()  {}
func (EffectAdvance) effect() {}
func (EffectPersist) effect() {}

// Outcome is the result of feeding an event to the machine.
type Outcome struct {
	Signal  Signal
	Effects []Effect
}

func signal(s Signal) Outcome { return Outcome{Signal: s} }

func effects(e ...Effect) Outcome { return Outcome{Effects: e} }
