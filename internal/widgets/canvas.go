package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Fill returns a width x height grid of spaces in the given style renderer.
func Fill(width, height int, render func(...string) string) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	row := strings.Repeat(" ", width)
	if render != nil {
		row = render(row)
	}
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// Fit pads or clips s to exactly width x height cells.
func Fit(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// OverlayAt composites overlay on top of base with its top-left cell at (x, y).
// Rows and columns falling outside the width x height canvas are clipped, and
// x may be negative.
func OverlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitToLines(base, height)
	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)
		line = padRight(line, overlayWidth)
		if x < 0 {
			line = dropColumns(line, -x)
		}
		start := max(0, x)
		if start >= width {
			continue
		}
		left := ansi.Truncate(target, start, "")
		pos := start + ansi.StringWidth(line)
		right := ""
		if pos < width {
			right = ansi.TruncateLeft(target, pos, "")
		}
		baseLines[row] = ansi.Truncate(left+line+right, width, "")
	}
	return strings.Join(baseLines, "\n")
}

func splitToLines(s string, height int) []string {
	if height <= 0 {
		return nil
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
