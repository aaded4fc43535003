package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/bowmaster/internal/core"
)

// palette maps core.Color to the RGB value the overlay blends from.
// ColorDefault uses a light gray stand-in for the terminal foreground.
var palette = map[core.Color]string{
	core.ColorDefault:      "#c0c0c0",
	core.ColorRed:          "#cd3131",
	core.ColorGreen:        "#0dbc79",
	core.ColorYellow:       "#e5e510",
	core.ColorBlue:         "#2472c8",
	core.ColorMagenta:      "#bc3fbc",
	core.ColorCyan:         "#11a8cd",
	core.ColorWhite:        "#e5e5e5",
	core.ColorBrightRed:    "#f14c4c",
	core.ColorBrightGreen:  "#23d18b",
	core.ColorBrightYellow: "#f5f543",
	core.ColorBrightBlue:   "#3b8eea",
	core.ColorBrightWhite:  "#ffffff",
	core.ColorOrange:       "#ff8700",
	core.ColorGray:         "#8a8a8a",
	core.ColorBrown:        "#a0522d",
}

// colorStyles maps core.Color to lipgloss styles when no overlay is shown.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrown:        lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
}

// Overlay opacities above dimThreshold replace visible runes with a shade
// glyph; above blackout the screen renders blank.
const (
	dimThreshold = 0.6
	blackout     = 0.97
)

var black = colorful.Color{}

// BlendColor returns the hex colour of c faded toward black by opacity.
func BlendColor(c core.Color, opacity float64) string {
	hex, ok := palette[c]
	if !ok {
		hex = palette[core.ColorDefault]
	}
	base, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return base.BlendRgb(black, core.ClampF(opacity, 0, 1)).Clamped().Hex()
}

// overlayStyles builds per-colour styles for one frame's overlay opacity.
func overlayStyles(opacity float64) map[core.Color]lipgloss.Style {
	if opacity <= 0 {
		return colorStyles
	}
	styles := make(map[core.Color]lipgloss.Style, len(palette))
	for c := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(BlendColor(c, opacity)))
	}
	return styles
}

// overlayRune is the glyph a cell shows under the given opacity.
func overlayRune(r rune, opacity float64) rune {
	switch {
	case r == ' ':
		return r
	case opacity >= blackout:
		return ' '
	case opacity >= dimThreshold:
		return '░'
	}
	return r
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
// A non-zero Screen.Overlay fades every colour toward black.
func RenderScreen(s *core.Screen) string {
	opacity := s.Overlay()
	styles := overlayStyles(opacity)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(overlayRune(cell.Rune, opacity))
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
