package tui

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/packrat/internal/gear"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestAllPaletteColorsAreValidHex(t *testing.T) {
	t.Parallel()

	colors := AllPaletteColors()
	require.Len(t, colors, 26)
	for _, c := range colors {
		require.Regexp(t, hexColorRegex, string(c))
	}
}

func TestGroupAccentColorsCoverEveryGroup(t *testing.T) {
	t.Parallel()

	accents := GroupAccentColors()
	require.Len(t, accents, len(gear.Groups()))
	for _, g := range gear.Groups() {
		c, ok := accents[g]
		require.True(t, ok, "no accent for group %q", g)
		require.Regexp(t, hexColorRegex, string(c))
	}
}

func TestGroupAccentFallsBackForUnknownGroup(t *testing.T) {
	t.Parallel()

	require.Equal(t, colorOverlay1, groupAccent(gear.Group("attic")))
	require.Equal(t, colorGreen, groupAccent(gear.GroupCamping))
}

func TestSemanticAliasesMatchPalette(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		alias string
		want  string
	}{
		{"accent", string(colorAccent), string(colorPink)},
		{"focus", string(colorFocus), string(colorLavender)},
		{"success", string(colorSuccess), string(colorGreen)},
		{"error", string(colorError), string(colorRed)},
		{"warning", string(colorWarning), string(colorYellow)},
		{"info", string(colorInfo), string(colorTeal)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.alias)
		})
	}
}
