package decision

// Tracker records an accept/reject decision per word.
// It is not safe for concurrent use; the session owns it on the event loop.
type Tracker struct {
	decisions map[string]bool
	accepted  []string
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{decisions: make(map[string]bool)}
}

// Record upserts the decision for word. A later decision for the same word
// replaces the earlier one.
func (t *Tracker) Record(word string, accepted bool) {
	prev, seen := t.decisions[word]
	t.decisions[word] = accepted

	switch {
	case accepted && (!seen || !prev):
		t.accepted = append(t.accepted, word)
	case !accepted && seen && prev:
		t.removeAccepted(word)
	}
}

// Decision returns the recorded decision for word and whether one exists.
func (t *Tracker) Decision(word string) (accepted, ok bool) {
	accepted, ok = t.decisions[word]
	return accepted, ok
}

// Decided returns the number of distinct words with a decision.
func (t *Tracker) Decided() int {
	return len(t.decisions)
}

// Accepted returns the number of words currently accepted.
func (t *Tracker) Accepted() int {
	return len(t.accepted)
}

// AcceptedWords returns the accepted words in the order they were accepted.
func (t *Tracker) AcceptedWords() []string {
	out := make([]string, len(t.accepted))
	copy(out, t.accepted)
	return out
}

func (t *Tracker) removeAccepted(word string) {
	for i, w := range t.accepted {
		if w == word {
			t.accepted = append(t.accepted[:i], t.accepted[i+1:]...)
			return
		}
	}
}
