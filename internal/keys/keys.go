package keys

import (
	"fmt"

	"charm.land/bubbles/v2/key"

	"github.com/abhisek/knownwords/internal/ui/layout"
)

// Action is a recognized key category.
type Action int

const (
	ActionNone Action = iota
	ActionMenu
	ActionExit
	ActionSelect
	ActionPrev
	ActionNext
	ActionAccept
	ActionReject
	ActionSaveConfirm
	ActionSaveDecline
)

var actionNames = [...]string{
	ActionNone:        "none",
	ActionMenu:        "menu",
	ActionExit:        "exit",
	ActionSelect:      "select",
	ActionPrev:        "prev",
	ActionNext:        "next",
	ActionAccept:      "accept",
	ActionReject:      "reject",
	ActionSaveConfirm: "save-confirm",
	ActionSaveDecline: "save-decline",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// KeyMap binds keys to actions.
type KeyMap struct {
	Menu        key.Binding
	Exit        key.Binding
	Select      key.Binding
	Prev        key.Binding
	Next        key.Binding
	Accept      key.Binding
	Reject      key.Binding
	SaveConfirm key.Binding
	SaveDecline key.Binding
}

// DefaultKeyMap is the binding set used by the session and instructions
// screens.
var DefaultKeyMap = KeyMap{
	Menu:        key.NewBinding(key.WithKeys("space"), key.WithHelp("Space", "Menu")),
	Exit:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Exit")),
	Select:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Select")),
	Prev:        key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "Previous")),
	Next:        key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "Next")),
	Accept:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "Known")),
	Reject:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "Unknown")),
	SaveConfirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("Y", "Save")),
	SaveDecline: key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("N", "Discard")),
}

// Resolve maps a key event to its action. Unbound keys yield ActionNone.
func (m KeyMap) Resolve(k fmt.Stringer) Action {
	switch {
	case key.Matches(k, m.Menu):
		return ActionMenu
	case key.Matches(k, m.Exit):
		return ActionExit
	case key.Matches(k, m.Select):
		return ActionSelect
	case key.Matches(k, m.Prev):
		return ActionPrev
	case key.Matches(k, m.Next):
		return ActionNext
	case key.Matches(k, m.Accept):
		return ActionAccept
	case key.Matches(k, m.Reject):
		return ActionReject
	case key.Matches(k, m.SaveConfirm):
		return ActionSaveConfirm
	case key.Matches(k, m.SaveDecline):
		return ActionSaveDecline
	}
	return ActionNone
}

// Hints turns bindings into footer hints.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
