package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jask/drawer/internal/config"
)

// Theme is the palette the host paints with. The backdrop comes from the
// drawer's options.
type Theme struct {
	DrawerFg  lipgloss.Color
	ContentBg lipgloss.Color
	ContentFg lipgloss.Color
	Accent    lipgloss.Color
}

// ThemeFromConfig reads the style section. Colours were validated on load.
func ThemeFromConfig(c config.StyleConfig) Theme {
	return Theme{
		DrawerFg:  lipgloss.Color(c.DrawerFg),
		ContentBg: lipgloss.Color(c.ContentBg),
		ContentFg: lipgloss.Color(c.ContentFg),
		Accent:    lipgloss.Color(c.DecorationBorder),
	}
}

// blend mixes from toward to by t in RGB space. Colours that do not parse
// snap to the nearer endpoint.
func blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	a, errA := colorful.Hex(string(from))
	b, errB := colorful.Hex(string(to))
	if errA != nil || errB != nil {
		if t < 0.5 {
			return from
		}
		return to
	}
	return lipgloss.Color(a.BlendRgb(b, t).Clamped().Hex())
}
