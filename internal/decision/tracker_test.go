package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_Empty(t *testing.T) {
	tr := NewTracker()

	assert.Equal(t, 0, tr.Decided())
	assert.Equal(t, 0, tr.Accepted())
	assert.Empty(t, tr.AcceptedWords())

	_, ok := tr.Decision("не")
	assert.False(t, ok)
}

func TestTracker_RecordCounts(t *testing.T) {
	tr := NewTracker()
	tr.Record("не", true)
	tr.Record("что", false)
	tr.Record("с", true)

	assert.Equal(t, 3, tr.Decided())
	assert.Equal(t, 2, tr.Accepted())
	assert.Equal(t, []string{"не", "с"}, tr.AcceptedWords())
}

func TestTracker_OverwriteReplacesDecision(t *testing.T) {
	tr := NewTracker()
	tr.Record("это", true)
	tr.Record("это", false)

	assert.Equal(t, 1, tr.Decided())
	assert.Equal(t, 0, tr.Accepted())
	accepted, ok := tr.Decision("это")
	assert.True(t, ok)
	assert.False(t, accepted)

	tr.Record("это", true)
	assert.Equal(t, 1, tr.Accepted())
}

func TestTracker_AcceptanceOrder(t *testing.T) {
	tr := NewTracker()
	tr.Record("a", true)
	tr.Record("b", true)
	tr.Record("c", true)

	// Re-accepting keeps the original position.
	tr.Record("a", true)
	assert.Equal(t, []string{"a", "b", "c"}, tr.AcceptedWords())

	// Rejecting then accepting again moves the word to the end.
	tr.Record("a", false)
	tr.Record("a", true)
	assert.Equal(t, []string{"b", "c", "a"}, tr.AcceptedWords())
}

func TestTracker_AcceptedWordsIsCopy(t *testing.T) {
	tr := NewTracker()
	tr.Record("a", true)

	words := tr.AcceptedWords()
	words[0] = "mutated"

	assert.Equal(t, []string{"a"}, tr.AcceptedWords())
}
