package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sirupsen/logrus"

	"github.com/jask/packrat/internal/dnd"
	"github.com/jask/packrat/internal/gear"
)

var (
	itemNameStyle     = lipgloss.NewStyle().Foreground(colorText)
	itemWeightStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)
	itemDescStyle     = lipgloss.NewStyle().Foreground(colorOverlay1)
	itemSelectedStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1).Bold(true)
	itemDraggingStyle = lipgloss.NewStyle().Foreground(colorOverlay0).Italic(true)
)

// itemZoneID names the clickable zone for one item row.
func itemZoneID(id string) string {
	return "item/" + id
}

// itemRow renders a single piece of gear and acts as the drag source for it.
// It holds no store access: rows only read, never mutate.
type itemRow struct {
	item gear.Item
	log  *logrus.Entry
}

func newItemRow(item gear.Item, log *logrus.Entry) *itemRow {
	return &itemRow{item: item, log: log}
}

// DragStart loads the row's item id into the session and declares the gesture
// a move. Implements dnd.Draggable.
func (r *itemRow) DragStart(s *dnd.Session) {
	s.SetData(dnd.TextPlain, r.item.ID)
	s.SetEffect(dnd.EffectMove)
	r.log.WithFields(logrus.Fields{"id": r.item.ID, "name": r.item.Name}).Debug("drag started")
}

// DragEnd implements dnd.Draggable. Nothing to clean up; the row just notes
// the gesture finished.
func (r *itemRow) DragEnd(s *dnd.Session) {
	r.log.WithField("id", r.item.ID).Debug("drag ended")
}

// View renders the row at the given width: name left, weight label right,
// plus an optional description line.
func (r *itemRow) View(width int, selected, dragging, showDesc bool) string {
	if width < 8 {
		width = 8
	}
	weight := gear.WeightLabel(r.item.Grams)
	nameWidth := width - ansi.StringWidth(weight) - 1
	if nameWidth < 4 {
		nameWidth = 4
	}
	name := truncate(r.item.Name, nameWidth)
	gap := width - ansi.StringWidth(name) - ansi.StringWidth(weight)
	if gap < 1 {
		gap = 1
	}

	var line string
	switch {
	case dragging:
		line = itemDraggingStyle.Render(padRight(name+strings.Repeat(" ", gap)+weight, width))
	case selected:
		line = itemSelectedStyle.Render(padRight(name+strings.Repeat(" ", gap)+weight, width))
	default:
		line = itemNameStyle.Render(name) + strings.Repeat(" ", gap) + itemWeightStyle.Render(weight)
	}

	if !showDesc || strings.TrimSpace(r.item.Description) == "" {
		return line
	}
	desc := itemDescStyle.Render(truncate("  "+r.item.Description, width))
	return line + "\n" + desc
}
