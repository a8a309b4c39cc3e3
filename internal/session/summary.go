package session

// Summary describes a session for the history log.
type Summary struct {
	Level    string
	Phase    Phase
	Fetched  int
	Decided  int
	Accepted int
}

// Summary returns the current counts of the session.
func (m *Machine) Summary() Summary {
	return Summary{
		Level:    m.level,
		Phase:    m.phase,
		Fetched:  len(m.words),
		Decided:  m.tracker.Decided(),
		Accepted: m.tracker.Accepted(),
	}
}
