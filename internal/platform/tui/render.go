package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorHill:         lipgloss.NewStyle().Foreground(lipgloss.Color("65")),
	core.ColorCloud:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorCloudFaint:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorGround:       lipgloss.NewStyle().Foreground(lipgloss.Color("137")),
	core.ColorCactus:       lipgloss.NewStyle().Foreground(lipgloss.Color("41")),
	core.ColorCactusDark:   lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorRock:         lipgloss.NewStyle().Foreground(lipgloss.Color("103")),
	core.ColorBird:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ColorCat:          lipgloss.NewStyle().Foreground(lipgloss.Color("172")),
	core.ColorCatLight:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
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

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
