package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const ansiReset = "\x1b[0m"

// Splice replaces a rectangle of view with block, anchored at (x, y).
// Truncation is ANSI-aware, so styling on either side of the block survives.
// Rows of block that fall outside view are dropped.
func Splice(view, block string, x, y int) string {
	if block == "" {
		return view
	}
	viewLines := strings.Split(view, "\n")
	blockLines := strings.Split(block, "\n")
	blockWidth := lipgloss.Width(block)

	for i, line := range blockLines {
		row := y + i
		if row < 0 || row >= len(viewLines) {
			continue
		}
		under := viewLines[row]

		var b strings.Builder
		if x > 0 {
			prefix := ansi.Truncate(under, x, "")
			b.WriteString(prefix)
			// Short rows are padded so the block lands on its column.
			if gap := x - ansi.StringWidth(prefix); gap > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
		}
		b.WriteString(ansiReset)
		b.WriteString(line)
		if pad := blockWidth - ansi.StringWidth(line); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(ansiReset)
		if end := x + blockWidth; end < ansi.StringWidth(under) {
			b.WriteString(ansi.TruncateLeft(under, end, ""))
		}
		viewLines[row] = b.String()
	}
	return strings.Join(viewLines, "\n")
}

// Clip truncates every row of view to width cells so the terminal never wraps.
func Clip(view string, width int) string {
	lines := strings.Split(view, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > width {
			lines[i] = ansi.Truncate(line, width, "") + ansiReset
		}
	}
	return strings.Join(lines, "\n")
}

// Canvas returns a blank width x height screen.
func Canvas(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// CenterOf returns the top-left cell that centres block on a width x height
// screen, clamped to the screen origin.
func CenterOf(width, height int, block string) (x, y int) {
	bw, bh := lipgloss.Size(block)
	return max(0, (width-bw)/2), max(0, (height-bh)/2)
}

// Dim strips styling from view and repaints every row with style.
// Used to push the page behind the backdrop.
func Dim(view string, style lipgloss.Style) string {
	lines := strings.Split(ansi.Strip(view), "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
