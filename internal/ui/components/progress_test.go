package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestProgressBar_Percent(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 10, 0},
		{5, 10, 0.5},
		{12, 10, 1},
		{0, 0, 1},
		{-3, 10, 0},
	}
	for _, tt := range tests {
		got := NewProgressBar("", tt.done, tt.total, false, 20).Percent()
		if got != tt.want {
			t.Errorf("Percent(%d/%d) = %v, want %v", tt.done, tt.total, got, tt.want)
		}
	}
}

func TestProgressBar_ViewWidth(t *testing.T) {
	bar := NewProgressBar("", 10, 25, true, 40)
	view := bar.View()
	if w := lipgloss.Width(view); w != 40 {
		t.Errorf("width = %d, want 40", w)
	}
	if !strings.Contains(view, "10 / 25") {
		t.Errorf("view should show the count: %q", view)
	}
}
