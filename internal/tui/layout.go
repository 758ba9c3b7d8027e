package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// minPaneWidth is the narrowest a group pane can get before the board drops
// to fewer columns.
const minPaneWidth = 24

// boardColumns picks how many pane columns fit. A configured value wins,
// clamped to the pane count; zero means fit by width.
func boardColumns(width, panes, configured int) int {
	if panes < 1 {
		return 1
	}
	if configured > 0 {
		if configured > panes {
			return panes
		}
		return configured
	}
	if width <= 0 {
		return panes
	}
	cols := width / minPaneWidth
	if cols < 1 {
		cols = 1
	}
	if cols > panes {
		cols = panes
	}
	return cols
}

// splitWidths divides total into n column widths, handing the remainder out
// left to right.
func splitWidths(total, n int) []int {
	if n <= 0 {
		return nil
	}
	base := total / n
	rem := total % n
	out := make([]int, n)
	for i := range out {
		out[i] = base
		if i < rem {
			out[i]++
		}
	}
	return out
}

// borderBox draws a rounded box of the given outer size with the title
// embedded in the top edge. Content lines are padded and clipped to fit; the
// caller styles them beforehand.
func borderBox(title string, content []string, width, height int, border, titleColor lipgloss.Color, titleBold bool) string {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor).Bold(titleBold)

	innerWidth := width - 2
	contentWidth := innerWidth - 2
	if contentWidth < 1 {
		contentWidth = 1
		innerWidth = contentWidth + 2
	}

	titleText := " " + strings.TrimSpace(title) + " "
	if ansi.StringWidth(titleText) > innerWidth {
		titleText = " " + ansi.Truncate(strings.TrimSpace(title), max(1, innerWidth-2), "") + " "
	}
	dashes := innerWidth - ansi.StringWidth(titleText)
	if dashes < 0 {
		dashes = 0
	}
	leftDash := 1
	if dashes == 0 {
		leftDash = 0
	} else if leftDash > dashes {
		leftDash = dashes
	}
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	rows := make([]string, 0, height)
	rows = append(rows, borderStyle.Render("╭")+
		borderStyle.Render(strings.Repeat("─", leftDash))+
		titleStyle.Render(titleText)+
		borderStyle.Render(strings.Repeat("─", rightDash))+
		borderStyle.Render("╮"))
	for i := 0; i < height-2; i++ {
		line := ""
		if i < len(content) {
			line = ansi.Truncate(content[i], contentWidth, "")
		}
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰")+borderStyle.Render(strings.Repeat("─", innerWidth))+borderStyle.Render("╯"))
	return strings.Join(rows, "\n")
}

// boxContentWidth returns the usable content width inside a borderBox of the
// given outer width.
func boxContentWidth(width int) int {
	w := width - 4
	if w < 1 {
		w = 1
	}
	return w
}

// overlayAt composites an overlay string on top of a base string at the given
// character position (x, y). Both are treated as line-based grids.
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitLines(base)
	overlayLines := splitLines(overlay)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		leftWidth := ansi.StringWidth(left)
		if leftWidth < x {
			left += strings.Repeat(" ", x-leftWidth)
		}

		overlayLine := padRight(line, overlayWidth)
		pos := x + ansi.StringWidth(overlayLine)
		right := ""
		if width > 0 {
			right = ansi.TruncateLeft(target, pos, "")
			rightWidth := ansi.StringWidth(right)
			gap := width - pos - rightWidth
			if gap > 0 {
				right = strings.Repeat(" ", gap) + right
			}
		}

		baseLines[row] = left + overlayLine + right
	}
	return strings.Join(baseLines, "\n")
}

// ---------------------------------------------------------------------------
// String utilities
// ---------------------------------------------------------------------------

// splitLines splits a string on newlines, returning at least one element.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// maxLineWidth returns the visual width of the widest line.
func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// truncate shortens s to the given visual width, appending an ellipsis when
// it had to cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
