package store

import (
	"context"
	"time"
)

// Session event actions.
const (
	ActionStart       = "start"
	ActionFetched     = "fetched"
	ActionFetchFailed = "fetch_failed"
	ActionSaved       = "saved"
	ActionDiscarded   = "discarded"
	ActionAbandoned   = "abandoned"
)

// SessionEventData captures one step of a session.
type SessionEventData struct {
	SessionID     string
	Action        string
	Level         string
	WordsFetched  int
	WordsDecided  int
	WordsAccepted int
	WordsSaved    int
	Error         string
}

// SessionRecord folds the events of one session.
type SessionRecord struct {
	SessionID string
	Level     string
	Started   time.Time
	Ended     time.Time

	// Outcome is the action of the last event.
	Outcome  string
	Fetched  int
	Accepted int
	Saved    int
}

// Totals aggregates every recorded session.
type Totals struct {
	Sessions   int
	Saves      int
	WordsSaved int
}

// EventRepo provides append and query access to session events.
type EventRepo interface {
	// AppendSessionEvent records a session event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// RecentSessions returns up to limit sessions, most recent first.
	RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error)

	// Totals aggregates all sessions.
	Totals(ctx context.Context) (Totals, error)
}
