package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/packrat/internal/gear"
)

type pickerAction int

const (
	pickerActionNone pickerAction = iota
	pickerActionMoved
	pickerActionSelected
	pickerActionCancelled
)

type pickerResult struct {
	Action pickerAction
	Group  gear.Group
}

var (
	pickerTitleStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	pickerMetaStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)
	pickerCursorStyle = lipgloss.NewStyle().Background(colorSurface1).Bold(true)
	pickerDigitStyle  = lipgloss.NewStyle().Foreground(colorOverlay1)
)

// movePicker chooses a destination group for one item, as the keyboard
// counterpart to dragging a row onto a pane. The cursor starts on the item's
// current group.
type movePicker struct {
	item   gear.Item
	groups []gear.Group
	cursor int
}

func newMovePicker(item gear.Item) *movePicker {
	p := &movePicker{item: item, groups: gear.Groups()}
	for i, g := range p.groups {
		if g == item.Group {
			p.cursor = i
			break
		}
	}
	return p
}

// HandleKey advances the picker state machine and reports what happened so
// the caller can close the modal or apply a move. Digits select a destination
// directly.
func (p *movePicker) HandleKey(keyName string) pickerResult {
	switch keyName {
	case "k", "up":
		if p.cursor > 0 {
			p.cursor--
			return pickerResult{Action: pickerActionMoved}
		}
		return pickerResult{Action: pickerActionNone}
	case "j", "down":
		if p.cursor < len(p.groups)-1 {
			p.cursor++
			return pickerResult{Action: pickerActionMoved}
		}
		return pickerResult{Action: pickerActionNone}
	case "enter":
		return pickerResult{Action: pickerActionSelected, Group: p.groups[p.cursor]}
	case "esc":
		return pickerResult{Action: pickerActionCancelled}
	default:
		if n, err := strconv.Atoi(keyName); err == nil && n >= 1 && n <= len(p.groups) {
			p.cursor = n - 1
			return pickerResult{Action: pickerActionSelected, Group: p.groups[p.cursor]}
		}
		return pickerResult{Action: pickerActionNone}
	}
}

// View renders the picker body for the modal overlay.
func (p *movePicker) View(width int) string {
	if width < 16 {
		width = 16
	}
	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render(truncate("Move "+p.item.Name, width)))
	b.WriteString("\n\n")

	for i, g := range p.groups {
		accent := lipgloss.NewStyle().Foreground(groupAccent(g))
		digit := pickerDigitStyle.Render(strconv.Itoa(i+1) + " ")
		label := accent.Render(g.Label())
		meta := ""
		if g == p.item.Group {
			meta = pickerMetaStyle.Render(" · current")
		}

		row := digit + label + meta
		if i == p.cursor {
			row = pickerCursorStyle.Render(padRight(strconv.Itoa(i+1)+" "+g.Label()+currentSuffix(g == p.item.Group), width))
		}
		b.WriteString(row)
		if i < len(p.groups)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func currentSuffix(current bool) string {
	if current {
		return " · current"
	}
	return ""
}
