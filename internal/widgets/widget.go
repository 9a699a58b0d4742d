package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Widget renders itself into a width x height cell grid.
type Widget interface {
	Render(width, height int) string
}

// Box is a padded panel with an optional rounded border.
type Box struct {
	Title      string
	Content    string
	Border     bool
	BorderFg   lipgloss.Color
	Foreground lipgloss.Color
	Background lipgloss.Color
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().
		Foreground(b.Foreground).
		Background(b.Background)
	inner, innerH := width, height
	if b.Border && width > 2 && height > 2 {
		style = style.Border(lipgloss.RoundedBorder()).
			BorderForeground(b.BorderFg).
			BorderBackground(b.Background)
		inner, innerH = width-2, height-2
	}
	body := b.Content
	if b.Title != "" {
		body = "[" + b.Title + "]\n" + body
	}
	lines := splitToLines(body, innerH)
	for i := range lines {
		lines[i] = padRight(lines[i], inner)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// Menu is a titled list with one highlighted row.
type Menu struct {
	Title    string
	Items    []string
	Selected int
	Style    lipgloss.Style
	Active   lipgloss.Style
}

func (m Menu) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, 0, len(m.Items)+2)
	rows = append(rows, m.Style.Bold(true).Render(padRight(" "+m.Title, width)))
	rows = append(rows, m.Style.Render(padRight("", width)))
	for i, item := range m.Items {
		if i == m.Selected {
			rows = append(rows, m.Active.Render(padRight(" ▶ "+item, width)))
			continue
		}
		rows = append(rows, m.Style.Render(padRight("   "+item, width)))
	}
	if len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}

// Palette is the colour set a host hands to widgets each frame.
type Palette struct {
	Fg     lipgloss.Color
	Accent lipgloss.Color
	Bg     lipgloss.Color
}

// Painter is implemented by widgets that take their colours from the host, so
// the host can fade them with the animation.
type Painter interface {
	Paint(p Palette)
}

// Framed draws Child inside a rounded border.
type Framed struct {
	Child      Widget
	BorderFg   lipgloss.Color
	Background lipgloss.Color
}

func (f Framed) Render(width, height int) string {
	if width <= 0 || height <= 0 || f.Child == nil {
		return ""
	}
	if width <= 2 || height <= 2 {
		return Fit(f.Child.Render(width, height), width, height)
	}
	inner := Fit(f.Child.Render(width-2, height-2), width-2, height-2)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(f.BorderFg).
		BorderBackground(f.Background).
		Render(inner)
}
