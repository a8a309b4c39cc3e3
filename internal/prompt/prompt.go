// Package prompt assembles every user-visible text of a session.
package prompt

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"github.com/muesli/reflow/wordwrap"

	"github.com/abhisek/knownwords/internal/keys"
)

// PreviewIndent prefixes words and levels shown under a prompt.
const PreviewIndent = "\t"

func name(b key.Binding) string {
	return strings.ToUpper(b.Help().Key)
}

// Instructions is the text of the welcome screen.
func Instructions(km keys.KeyMap) string {
	return fmt.Sprintf(`Welcome to Known Words inquirer.
This application uses the openrussian.org API to find words you might want to learn.

After selecting your level of proficiency, words will appear on the screen.
For each word, select whether to save it.
The words you selected will be saved to a file.

You may, at any time, press %s to enter the menu, where you can, for example, start a new session.

Press %s to proceed.`, name(km.Menu), name(km.Select))
}

// LevelLong is shown when level selection starts.
func LevelLong(km keys.KeyMap, level string) string {
	return fmt.Sprintf(`Please indicate the proficiency level (CEFR) you want to target.
Change level with %s and %s.
To select a level, press %s.

%s%s`, name(km.Prev), name(km.Next), name(km.Select), PreviewIndent, level)
}

// LevelShort is shown after every level cursor move.
func LevelShort(km keys.KeyMap, level string) string {
	return fmt.Sprintf("Change level with %s and %s\n\n%s%s",
		name(km.Prev), name(km.Next), PreviewIndent, level)
}

// Fetching is the progress text of a running fetch. Counts are omitted
// until the total is known.
func Fetching(level string, fetched, total int, known bool) string {
	s := fmt.Sprintf("Your words at level %s are being fetched.", level)
	if known {
		s += fmt.Sprintf("\n\n%s%d / %d", PreviewIndent, fetched, total)
	}
	return s
}

// FetchFailed reports a fetch that cannot finish.
func FetchFailed(km keys.KeyMap, level string, err error) string {
	return fmt.Sprintf(`The words at level %s could not be fetched:

%s%v

Press %s to try again, %s for the menu.`, level, PreviewIndent, err, name(km.Select), name(km.Menu))
}

// Decision is shown for the word at index. mark is "", "known" or
// "unknown" depending on the recorded decision.
func Decision(km keys.KeyMap, word string, index, total, left int, mark string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s to save\n%s to discard\n\n", name(km.Accept), name(km.Reject))
	fmt.Fprintf(&b, "%s to go to previous\n%s to go to next\n\n", name(km.Prev), name(km.Next))
	fmt.Fprintf(&b, "Word %d / %d\n", index+1, total)
	fmt.Fprintf(&b, "%d %s left to decide on\n\n", left, plural(left, "word", "words"))
	b.WriteString(PreviewIndent + word)
	if mark != "" {
		fmt.Fprintf(&b, "  (%s)", mark)
	}
	return b.String()
}

// Save asks whether to persist the accepted words. head holds the first
// words of the set.
func Save(km keys.KeyMap, count int, head []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Press %s to save %d %s, %s to discard.",
		name(km.SaveConfirm), count, plural(count, "word", "words"), name(km.SaveDecline))
	if len(head) == 0 {
		return b.String()
	}
	fmt.Fprintf(&b, "\nThe first %d %s:\n\n", len(head), plural(len(head), "word", "words"))
	for i, w := range head {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(PreviewIndent + w)
	}
	return b.String()
}

// Wrap breaks text at word boundaries to fit width. Tabs are expanded
// first so the wrapped width matches what the terminal shows.
func Wrap(text string, width int) string {
	text = strings.ReplaceAll(text, "\t", "    ")
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
