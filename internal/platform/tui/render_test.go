package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/bevel/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '◤', core.ColorLemon)
	s.SetColored(3, 0, '◢', core.ColorSky)
	s.DrawTextColored(0, 1, "xy", core.ColorFlash)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "ab◤◢  " {
		t.Errorf("Line 0 = %q", lines[0])
	}
	if lines[1] != "xy    " {
		t.Errorf("Line 1 = %q", lines[1])
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorSpread; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("No style for %s", c)
		}
	}
}
