package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bevel/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. The piece palette uses
// hex colors; lipgloss degrades them on terminals without true color.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

	core.ColorLemon: lipgloss.NewStyle().Foreground(lipgloss.Color("#fefe3c")),
	core.ColorSky:   lipgloss.NewStyle().Foreground(lipgloss.Color("#a2d9e9")),
	core.ColorStone: lipgloss.NewStyle().Foreground(lipgloss.Color("#a6a6a6")),
	core.ColorPink:  lipgloss.NewStyle().Foreground(lipgloss.Color("#f799fc")),
	core.ColorLeaf:  lipgloss.NewStyle().Foreground(lipgloss.Color("#3db056")),
	core.ColorAmber: lipgloss.NewStyle().Foreground(lipgloss.Color("#f8bf2d")),

	core.ColorFlash:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true),
	core.ColorSpread: lipgloss.NewStyle().Foreground(lipgloss.Color("#fff3b0")).Background(lipgloss.Color("#3a3a5a")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
