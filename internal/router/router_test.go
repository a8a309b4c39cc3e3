package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/knownwords/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
}

// focusScreen records lifecycle calls.
type focusScreen struct {
	stubScreen
	deactivated int
	activated   int
}

func (s *focusScreen) Deactivate() { s.deactivated++ }

func (s *focusScreen) Activate() tea.Cmd {
	s.activated++
	return nil
}

func TestLifecycle_PushPop(t *testing.T) {
	bottom := &focusScreen{stubScreen: stubScreen{title: "bottom"}}
	r := New(bottom)

	top := &focusScreen{stubScreen: stubScreen{title: "top"}}
	r.Update(PushScreenMsg{Screen: top})
	if bottom.deactivated != 1 {
		t.Errorf("covered screen deactivated %d times, want 1", bottom.deactivated)
	}

	r.Update(PopScreenMsg{})
	if top.deactivated != 1 {
		t.Errorf("popped screen deactivated %d times, want 1", top.deactivated)
	}
	if bottom.activated != 1 {
		t.Errorf("uncovered screen activated %d times, want 1", bottom.activated)
	}
}

func TestLifecycle_ReplaceAndClose(t *testing.T) {
	first := &focusScreen{stubScreen: stubScreen{title: "first"}}
	r := New(first)

	second := &focusScreen{stubScreen: stubScreen{title: "second"}}
	r.Replace(second)
	if first.deactivated != 1 {
		t.Errorf("replaced screen deactivated %d times, want 1", first.deactivated)
	}

	r.Close()
	if second.deactivated != 1 {
		t.Errorf("Close deactivated %d times, want 1", second.deactivated)
	}
}
