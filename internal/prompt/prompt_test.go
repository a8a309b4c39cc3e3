package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/knownwords/internal/keys"
)

func TestInstructions_NamesKeys(t *testing.T) {
	s := Instructions(keys.DefaultKeyMap)
	assert.Contains(t, s, "press SPACE to enter the menu")
	assert.Contains(t, s, "Press ENTER to proceed.")
}

func TestLevelPrompts(t *testing.T) {
	long := LevelLong(keys.DefaultKeyMap, "B2")
	assert.Contains(t, long, "To select a level, press ENTER.")
	assert.True(t, strings.HasSuffix(long, "\tB2"))

	short := LevelShort(keys.DefaultKeyMap, "C1")
	assert.Equal(t, "Change level with ← and →\n\n\tC1", short)
}

func TestFetching(t *testing.T) {
	assert.Equal(t, "Your words at level A1 are being fetched.", Fetching("A1", 0, 0, false))
	assert.Equal(t, "Your words at level A1 are being fetched.\n\n\t10 / 25", Fetching("A1", 10, 25, true))
}

func TestFetchFailed(t *testing.T) {
	s := FetchFailed(keys.DefaultKeyMap, "A2", errors.New("boom"))
	assert.Contains(t, s, "level A2")
	assert.Contains(t, s, "boom")
	assert.Contains(t, s, "Press ENTER to try again, SPACE for the menu.")
}

func TestDecision(t *testing.T) {
	tests := []struct {
		name  string
		left  int
		mark  string
		wants []string
	}{
		{"plural", 3, "", []string{"Word 1 / 3", "3 words left to decide on", "\tне"}},
		{"singular", 1, "", []string{"1 word left to decide on"}},
		{"marked", 2, "known", []string{"\tне  (known)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Decision(keys.DefaultKeyMap, "не", 0, 3, tt.left, tt.mark)
			for _, want := range tt.wants {
				assert.Contains(t, s, want)
			}
		})
	}
}

func TestSave(t *testing.T) {
	s := Save(keys.DefaultKeyMap, 2, []string{"a", "b"})
	assert.Equal(t, "Press Y to save 2 words, N to discard.\nThe first 2 words:\n\n\ta\n\tb", s)

	assert.Equal(t, "Press Y to save 0 words, N to discard.", Save(keys.DefaultKeyMap, 0, nil))
}

func TestWrap(t *testing.T) {
	got := Wrap("one two three four", 9)
	for _, line := range strings.Split(got, "\n") {
		assert.LessOrEqual(t, len(line), 9)
	}
	assert.Equal(t, "    x", Wrap("\tx", 0))
}
