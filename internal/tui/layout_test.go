package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestBoardColumns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		width      int
		panes      int
		configured int
		want       int
	}{
		{"configured wins", 200, 5, 3, 3},
		{"configured clamped to panes", 200, 5, 9, 5},
		{"fit by width", 5 * minPaneWidth, 5, 0, 5},
		{"narrow terminal", minPaneWidth + 2, 5, 0, 1},
		{"very narrow terminal", 10, 5, 0, 1},
		{"width caps columns", 3 * minPaneWidth, 5, 0, 3},
		{"zero width before first resize", 0, 5, 0, 5},
		{"no panes", 100, 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, boardColumns(tt.width, tt.panes, tt.configured))
		})
	}
}

func TestSplitWidthsSumToTotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total int
		n     int
		want  []int
	}{
		{100, 4, []int{25, 25, 25, 25}},
		{10, 3, []int{4, 3, 3}},
		{7, 5, []int{2, 2, 1, 1, 1}},
		{3, 1, []int{3}},
	}
	for _, tt := range tests {
		got := splitWidths(tt.total, tt.n)
		require.Equal(t, tt.want, got)

		sum := 0
		for _, w := range got {
			sum += w
		}
		require.Equal(t, tt.total, sum)
	}

	require.Nil(t, splitWidths(10, 0))
}

func TestBorderBoxDimensions(t *testing.T) {
	t.Parallel()

	box := borderBox("Camping", []string{"tent", "stove"}, 30, 8, colorSurface2, colorGreen, true)
	lines := strings.Split(box, "\n")
	require.Len(t, lines, 8)
	for i, line := range lines {
		require.Equal(t, 30, ansi.StringWidth(line), "line %d", i)
	}

	require.Contains(t, box, "Camping")
	require.Contains(t, lines[0], "╭")
	require.Contains(t, lines[0], "╮")
	require.Contains(t, lines[len(lines)-1], "╰")
	require.Contains(t, lines[len(lines)-1], "╯")
}

func TestBorderBoxClipsOverflowingContent(t *testing.T) {
	t.Parallel()

	content := []string{"one", "two", "three", "four", "five"}
	box := borderBox("T", content, 20, 5, colorSurface2, colorText, false)
	lines := strings.Split(box, "\n")
	require.Len(t, lines, 5)
	require.NotContains(t, box, "four")
	require.NotContains(t, box, "five")
}

func TestBorderBoxClipsWideContentLines(t *testing.T) {
	t.Parallel()

	content := []string{"a rather wide line of gear names", "ok"}
	box := borderBox("T", content, 12, 4, colorSurface2, colorText, false)
	lines := strings.Split(box, "\n")
	require.Len(t, lines, 4)
	for i, line := range lines {
		require.Equal(t, 12, ansi.StringWidth(line), "line %d", i)
	}
	require.NotContains(t, box, "wide line")
}

func TestBorderBoxTruncatesLongTitle(t *testing.T) {
	t.Parallel()

	box := borderBox("a very long pane title that cannot fit", []string{}, 16, 3, colorSurface2, colorText, false)
	for _, line := range strings.Split(box, "\n") {
		require.Equal(t, 16, ansi.StringWidth(line))
	}
}

func TestBoxContentWidth(t *testing.T) {
	t.Parallel()

	require.Equal(t, 26, boxContentWidth(30))
	require.Equal(t, 1, boxContentWidth(4))
	require.Equal(t, 1, boxContentWidth(0))
}

func TestOverlayAtReplacesRegion(t *testing.T) {
	t.Parallel()

	base := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbbb",
		"cccccccccc",
		"dddddddddd",
	}, "\n")
	out := overlayAt(base, "XX\nYY", 4, 1, 10, 4)
	lines := strings.Split(out, "\n")

	require.Equal(t, "aaaaaaaaaa", lines[0])
	require.Equal(t, "bbbbXXbbbb", lines[1])
	require.Equal(t, "ccccYYcccc", lines[2])
	require.Equal(t, "dddddddddd", lines[3])
}

func TestOverlayAtClampsToBase(t *testing.T) {
	t.Parallel()

	base := "aaaa\nbbbb"
	out := overlayAt(base, "XX\nYY\nZZ", 0, 1, 4, 2)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 2)
	require.Equal(t, "aaaa", lines[0])
	require.Equal(t, "XXbb", lines[1])
}

func TestOverlayAtPreservesLineWidths(t *testing.T) {
	t.Parallel()

	base := strings.Repeat("ab\n", 5)
	base = strings.TrimSuffix(base, "\n")
	out := overlayAt(base, "WIDE", 1, 2, 8, 5)
	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, ansi.StringWidth(line), 8)
	}
}

func TestPadRight(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ab   ", padRight("ab", 5))
	require.Equal(t, "abc", padRight("abc", 3))
	require.Equal(t, "abcd", padRight("abcd", 2))
	require.Equal(t, "", padRight("", 0))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "abc", truncate("abc", 10))
	require.Equal(t, "ab…", truncate("abcdef", 3))
	require.Equal(t, "", truncate("abc", 0))
}

func TestSplitLinesNeverEmpty(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{""}, splitLines(""))
	require.Equal(t, []string{"a", "b"}, splitLines("a\nb"))
}

func TestMaxLineWidth(t *testing.T) {
	t.Parallel()

	require.Equal(t, 5, maxLineWidth([]string{"ab", "abcde", "a"}))
	require.Equal(t, 0, maxLineWidth(nil))
}
