package app

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayAt composites overlay on top of base at column x, row y. Both are
// newline separated grids. Base lines are padded to width first so the
// splice never lands past the right edge; overlay rows below the base are
// dropped rather than extending it.
func overlayAt(base, overlay string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(overlay, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ansi.TruncateLeft(target, x+ansi.StringWidth(line), "")
		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// padHeight extends s with blank lines so a centered overlay has rows to
// land on even over short content.
func padHeight(s string, lines int) string {
	have := strings.Count(s, "\n") + 1
	if have >= lines {
		return s
	}
	return s + strings.Repeat("\n", lines-have)
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
