package session

import (
	"errors"
	"time"

	"github.com/abhisek/knownwords/internal/keys"
)

// Phase is the coarse stage of a session.
type Phase int

const (
	PhaseSelectingLevel Phase = iota // Choosing a CEFR level
	PhaseFetching                    // Waiting for the word list
	PhaseDeciding                    // Classifying words one by one
	PhaseSaving                      // Confirming the accepted set
)

func (p Phase) String() string {
	switch p {
	case PhaseSelectingLevel:
		return "selecting-level"
	case PhaseFetching:
		return "fetching"
	case PhaseDeciding:
		return "deciding"
	case PhaseSaving:
		return "saving"
	}
	return "unknown"
}

// DefaultLevels is the CEFR catalog.
var DefaultLevels = []string{"A1", "A2", "B1", "B2", "C1", "C2"}

const (
	DefaultDecisionDelay = 300 * time.Millisecond
	DefaultSettleDelay   = 500 * time.Millisecond
	DefaultPreviewLimit  = 10
)

// Config is the immutable configuration of a Machine.
type Config struct {
	// Levels is the ordered level catalog. Must not be empty.
	Levels []string

	// PreviewLimit caps the accepted words listed on the save prompt.
	PreviewLimit int

	// DecisionDelay is how long a decision stays visible before the
	// cursor auto-advances.
	DecisionDelay time.Duration

	// SettleDelay is how long the final progress stays visible before
	// deciding starts.
	SettleDelay time.Duration

	// Keys names the keys in prompts.
	Keys keys.KeyMap
}

// DefaultConfig returns the stock session configuration.
func DefaultConfig() Config {
	return Config{
		Levels:        DefaultLevels,
		PreviewLimit:  DefaultPreviewLimit,
		DecisionDelay: DefaultDecisionDelay,
		SettleDelay:   DefaultSettleDelay,
		Keys:          keys.DefaultKeyMap,
	}
}

var errNoLevels = errors.New("session: level catalog is empty")

func (c Config) validate() error {
	if len(c.Levels) == 0 {
		return errNoLevels
	}
	return nil
}
