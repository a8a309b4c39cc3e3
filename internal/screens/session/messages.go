package session

// fetchStartedMsg is sent when the discovery request of a run succeeded;
// the rest of the run's events arrive on its channel.
type fetchStartedMsg struct {
	run uint64
}

// fetchProgressMsg reports words received so far.
type fetchProgressMsg struct {
	run     uint64
	fetched int
	total   int
}

// fetchCompleteMsg carries the complete word list of a run.
type fetchCompleteMsg struct {
	run   uint64
	words []string
}

// fetchFailedMsg is sent when a run cannot finish.
type fetchFailedMsg struct {
	run uint64
	err error
}

// settleMsg ends the pause after a completed fetch.
type settleMsg struct {
	run uint64
}

// advanceMsg ends the pause after a decision.
type advanceMsg struct {
	from int
}
