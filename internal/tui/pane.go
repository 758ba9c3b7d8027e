package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sirupsen/logrus"

	"github.com/jask/packrat/internal/dnd"
	"github.com/jask/packrat/internal/gear"
	"github.com/jask/packrat/internal/store"
)

var paneEmptyStyle = lipgloss.NewStyle().Foreground(colorOverlay0).Italic(true)

// paneZoneID names the drop zone covering one group pane.
func paneZoneID(g gear.Group) string {
	return "pane/" + string(g)
}

// groupPane renders the items of a single group and is the drop target for
// it. It subscribes to the store once, at construction, and rebuilds its row
// list from scratch on every notification.
//
// A pane moves between two visual states while a drag is in flight: idle,
// and highlighted while DragOver reports the payload acceptable. Drop and
// DragLeave both return it to idle.
type groupPane struct {
	group gear.Group
	store *store.Store
	zones *zone.Manager
	log   *logrus.Entry

	members []gear.Item
	rows    []*itemRow
	query   string
	cursor  int
	top     int
	hover   bool
}

// newGroupPane builds the pane for g and subscribes it to the store. Groups
// outside the known set are refused.
func newGroupPane(g gear.Group, st *store.Store, zones *zone.Manager, log *logrus.Entry) (*groupPane, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("no pane for unknown group %q", g)
	}
	p := &groupPane{group: g, store: st, zones: zones, log: log}
	st.Subscribe(p.onStoreChange)
	return p, nil
}

// onStoreChange refilters the full sequence down to this pane's group and
// rebuilds every row. No diffing: the row list is always rebuilt whole.
func (p *groupPane) onStoreChange(items []gear.Item) {
	p.members = filterByGroup(items, p.group)
	p.rows = make([]*itemRow, len(p.members))
	for i, item := range p.members {
		p.rows[i] = newItemRow(item, p.log)
	}
	p.clampCursor()
	p.log.WithFields(logrus.Fields{"group": p.group, "count": len(p.members)}).Debug("pane refreshed")
}

// DragOver implements dnd.Droppable. Accepting the payload switches on the
// drop affordance; anything without a text slot is refused untouched.
func (p *groupPane) DragOver(s *dnd.Session) bool {
	if _, ok := s.Data(dnd.TextPlain); !ok {
		return false
	}
	p.hover = true
	return true
}

// Drop implements dnd.Droppable. The reassignment target is always this
// pane's own group.
func (p *groupPane) Drop(s *dnd.Session) {
	p.hover = false
	id, ok := s.Data(dnd.TextPlain)
	if !ok {
		return
	}
	p.log.WithFields(logrus.Fields{"id": id, "group": p.group}).Debug("drop received")
	p.store.Reassign(id, p.group)
}

// DragLeave implements dnd.Droppable.
func (p *groupPane) DragLeave(s *dnd.Session) {
	p.hover = false
}

// setQuery narrows the visible rows to those matching q.
func (p *groupPane) setQuery(q string) {
	p.query = q
	p.clampCursor()
}

// visible returns the rows shown under the current query, in member order.
func (p *groupPane) visible() []*itemRow {
	if strings.TrimSpace(p.query) == "" {
		return p.rows
	}
	out := make([]*itemRow, 0, len(p.rows))
	for _, r := range p.rows {
		if matchesQuery(r.item, p.query) {
			out = append(out, r)
		}
	}
	return out
}

func (p *groupPane) moveCursor(delta int) {
	p.cursor += delta
	p.clampCursor()
}

func (p *groupPane) jumpTop() {
	p.cursor = 0
	p.top = 0
}

func (p *groupPane) jumpBottom() {
	p.cursor = len(p.visible()) - 1
	p.clampCursor()
}

func (p *groupPane) clampCursor() {
	n := len(p.visible())
	if p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.top > p.cursor {
		p.top = p.cursor
	}
	if p.top < 0 {
		p.top = 0
	}
}

// selectedItem returns the item under the cursor, if any row is visible.
func (p *groupPane) selectedItem() (gear.Item, bool) {
	vis := p.visible()
	if len(vis) == 0 || p.cursor >= len(vis) {
		return gear.Item{}, false
	}
	return vis[p.cursor].item, true
}

// selectByID moves the cursor to the visible row holding id.
func (p *groupPane) selectByID(id string) bool {
	for i, r := range p.visible() {
		if r.item.ID == id {
			p.cursor = i
			return true
		}
	}
	return false
}

// rowByID returns the row holding id, visible or not.
func (p *groupPane) rowByID(id string) (*itemRow, bool) {
	for _, r := range p.rows {
		if r.item.ID == id {
			return r, true
		}
	}
	return nil, false
}

func rowLines(r *itemRow, showDesc bool) int {
	if showDesc && strings.TrimSpace(r.item.Description) != "" {
		return 2
	}
	return 1
}

// ensureCursorVisible scrolls the window until the cursor row fits within
// contentLines, accounting for two-line rows when descriptions are on.
func (p *groupPane) ensureCursorVisible(contentLines int, showDesc bool) {
	vis := p.visible()
	if len(vis) == 0 || contentLines < 1 {
		p.top = 0
		return
	}
	if p.top > p.cursor {
		p.top = p.cursor
	}
	for p.top < p.cursor {
		lines := 0
		for i := p.top; i <= p.cursor; i++ {
			lines += rowLines(vis[i], showDesc)
		}
		if lines <= contentLines {
			break
		}
		p.top++
	}
}

// View renders the pane at the given outer size: a bordered box with the
// group title embedded in the top edge, rows inside, and the whole block
// registered as this pane's drop zone.
func (p *groupPane) View(width, height int, focused, showDesc bool, draggedID string) string {
	if width < 8 {
		width = 8
	}
	if height < 3 {
		height = 3
	}

	accent := groupAccent(p.group)
	border := colorSurface2
	prefix := "  "
	switch {
	case p.hover:
		border = accent
		prefix = "⤓ "
	case focused:
		border = colorFocus
		prefix = "● "
	}

	contentWidth := boxContentWidth(width)
	contentLines := height - 2

	vis := p.visible()
	p.ensureCursorVisible(contentLines, showDesc)
	lines := p.contentViewLines(vis, contentWidth, contentLines, focused, showDesc, draggedID)

	box := borderBox(prefix+p.title(len(vis)), lines, width, height, border, accent, focused || p.hover)
	return p.zones.Mark(paneZoneID(p.group), box)
}

func (p *groupPane) title(visibleCount int) string {
	total := len(p.rows)
	if strings.TrimSpace(p.query) != "" && visibleCount != total {
		return fmt.Sprintf("%s (%d/%d)", p.group.Label(), visibleCount, total)
	}
	return fmt.Sprintf("%s (%d)", p.group.Label(), total)
}

func (p *groupPane) contentViewLines(vis []*itemRow, contentWidth, contentLines int, focused, showDesc bool, draggedID string) []string {
	if len(vis) == 0 {
		msg := "no gear"
		if p.hover {
			msg = "drop here"
		}
		return []string{paneEmptyStyle.Render(msg)}
	}

	var out []string
	for i := p.top; i < len(vis) && len(out) < contentLines; i++ {
		r := vis[i]
		selected := focused && i == p.cursor && !p.hover
		dragging := draggedID != "" && r.item.ID == draggedID
		rowView := r.View(contentWidth, selected, dragging, showDesc)
		for j, line := range splitLines(rowView) {
			if len(out) >= contentLines {
				break
			}
			// Rows keep a minimum render width, so narrow panes must
			// clip here, before the marker goes on.
			line = padRight(ansi.Truncate(line, contentWidth, ""), contentWidth)
			// Only the name line carries the zone marker, so a row cut off
			// at the pane bottom never leaves a marker unclosed.
			if j == 0 {
				line = p.zones.Mark(itemZoneID(r.item.ID), line)
			}
			out = append(out, line)
		}
	}
	return out
}
