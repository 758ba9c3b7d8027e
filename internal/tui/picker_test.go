package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/packrat/internal/gear"
)

func TestNewMovePickerStartsOnCurrentGroup(t *testing.T) {
	t.Parallel()

	p := newMovePicker(gear.Item{Name: "Tent", Group: gear.GroupHiking})
	require.Equal(t, gear.GroupHiking, p.groups[p.cursor])
}

func TestPickerNavigationClampsAtEnds(t *testing.T) {
	t.Parallel()

	p := newMovePicker(gear.Item{Name: "Tent", Group: gear.GroupUncategorized})
	require.Equal(t, 0, p.cursor)

	res := p.HandleKey("k")
	require.Equal(t, pickerActionNone, res.Action)
	require.Equal(t, 0, p.cursor)

	res = p.HandleKey("j")
	require.Equal(t, pickerActionMoved, res.Action)
	require.Equal(t, 1, p.cursor)

	for i := 0; i < 10; i++ {
		p.HandleKey("down")
	}
	require.Equal(t, len(p.groups)-1, p.cursor)
	res = p.HandleKey("j")
	require.Equal(t, pickerActionNone, res.Action)
}

func TestPickerEnterSelectsCursorGroup(t *testing.T) {
	t.Parallel()

	p := newMovePicker(gear.Item{Name: "Tent", Group: gear.GroupUncategorized})
	p.HandleKey("j")
	res := p.HandleKey("enter")

	require.Equal(t, pickerActionSelected, res.Action)
	require.Equal(t, gear.Groups()[1], res.Group)
}

func TestPickerDigitSelectsDirectly(t *testing.T) {
	t.Parallel()

	p := newMovePicker(gear.Item{Name: "Tent", Group: gear.GroupUncategorized})
	res := p.HandleKey("4")

	require.Equal(t, pickerActionSelected, res.Action)
	require.Equal(t, gear.Groups()[3], res.Group)

	res = p.HandleKey("9")
	require.Equal(t, pickerActionNone, res.Action)
}

func TestPickerEscapeCancels(t *testing.T) {
	t.Parallel()

	p := newMovePicker(gear.Item{Name: "Tent", Group: gear.GroupCamping})
	res := p.HandleKey("esc")
	require.Equal(t, pickerActionCancelled, res.Action)
}

func TestPickerUnboundKeyDoesNothing(t *testing.T) {
	t.Parallel()

	p := newMovePicker(gear.Item{Name: "Tent", Group: gear.GroupCamping})
	before := p.cursor
	res := p.HandleKey("x")
	require.Equal(t, pickerActionNone, res.Action)
	require.Equal(t, before, p.cursor)
}

func TestPickerViewListsEveryGroup(t *testing.T) {
	t.Parallel()

	p := newMovePicker(gear.Item{Name: "Tent", Group: gear.GroupCamping})
	view := p.View(40)

	require.Contains(t, view, "Move Tent")
	for _, g := range gear.Groups() {
		require.Contains(t, view, g.Label())
	}
	require.Contains(t, view, "current")
	require.Len(t, strings.Split(view, "\n"), 2+len(gear.Groups()))
}
