package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sirupsen/logrus"

	"github.com/jask/packrat/internal/config"
	"github.com/jask/packrat/internal/dnd"
	"github.com/jask/packrat/internal/gear"
	"github.com/jask/packrat/internal/store"
)

// App ties together the group panes, the weight summary, and the modals.
type App struct {
	cfg   config.Config
	store *store.Store
	zones *zone.Manager
	log   *logrus.Entry
	keys  *KeyRegistry

	state   appState
	panes   []*groupPane
	summary *summaryPane
	form    *itemForm
	picker  *movePicker
	search  textinput.Model

	focus    int
	width    int
	height   int
	status   string
	showDesc bool

	// drag is the gesture in flight, nil while idle.
	drag *dragState
}

// dragState follows one press-move-release gesture from its source row to
// whichever pane currently accepts it.
type dragState struct {
	session *dnd.Session
	source  *itemRow
	over    *groupPane
}

type appState string

const (
	stateBoard  appState = "board"
	stateForm   appState = "form"
	statePicker appState = "picker"
	stateSearch appState = "search"
)

// New builds the board. Every pane and the summary subscribe to the store
// here; they hear nothing until the first mutation after this returns.
func New(cfg config.Config, st *store.Store, log *logrus.Entry) (*App, error) {
	zones := zone.New()
	a := &App{
		cfg:      cfg,
		store:    st,
		zones:    zones,
		log:      log,
		keys:     NewKeyRegistry(),
		state:    stateBoard,
		showDesc: cfg.UI.ShowDescriptions,
	}

	for _, g := range gear.Groups() {
		p, err := newGroupPane(g, st, zones, log)
		if err != nil {
			zones.Close()
			return nil, err
		}
		a.panes = append(a.panes, p)
	}
	a.summary = newSummaryPane(st, log)
	a.form = newItemForm(log)

	search := textinput.New()
	search.Placeholder = "name or description"
	search.Prompt = "/ "
	search.CharLimit = 64
	a.search = search

	return a, nil
}

// Close releases the mouse zone manager.
func (a *App) Close() {
	a.zones.Close()
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		a.search.Width = max(16, m.Width-8)
	case tea.KeyMsg:
		switch a.state {
		case stateForm:
			return a.handleFormKey(m)
		case statePicker:
			return a.handlePickerKey(m)
		case stateSearch:
			return a.handleSearchKey(m)
		default:
			return a.handleBoardKey(m)
		}
	case tea.MouseMsg:
		return a.handleMouse(m)
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.status = "error: " + m.Error()
		a.log.WithError(m.error).Warn("command failed")
	}
	return a, nil
}

// ---------------------------------------------------------------------------
// Keyboard handling
// ---------------------------------------------------------------------------

func (a *App) handleBoardKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyName := m.String()
	b := a.keys.Lookup(keyName, scopeBoard)
	if b == nil {
		// Bare digits jump straight to a pane.
		if n, err := strconv.Atoi(keyName); err == nil && n >= 1 && n <= len(a.panes) {
			a.focus = n - 1
		}
		return a, nil
	}

	switch b.Action {
	case actionQuit:
		return a, tea.Quit
	case actionNavigate:
		delta := 1
		if keyName == "k" || keyName == "up" {
			delta = -1
		}
		a.focusedPane().moveCursor(delta)
	case actionNextPane:
		a.focus = (a.focus + 1) % len(a.panes)
	case actionPrevPane:
		a.focus = (a.focus + len(a.panes) - 1) % len(a.panes)
	case actionJumpTop:
		a.focusedPane().jumpTop()
	case actionJumpBottom:
		a.focusedPane().jumpBottom()
	case actionAdd:
		a.abandonDrag()
		a.state = stateForm
		a.status = ""
		return a, a.form.reset()
	case actionMove:
		item, ok := a.focusedPane().selectedItem()
		if !ok {
			a.status = "nothing to move"
			return a, nil
		}
		a.abandonDrag()
		a.picker = newMovePicker(item)
		a.state = statePicker
	case actionSearch:
		a.abandonDrag()
		a.state = stateSearch
		return a, a.search.Focus()
	case actionToggleDesc:
		a.showDesc = !a.showDesc
		a.cfg.UI.ShowDescriptions = a.showDesc
		return a, a.saveConfigCmd()
	}
	return a, nil
}

func (a *App) handleFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyName := m.String()
	if keyName == "ctrl+c" {
		return a, tea.Quit
	}
	b := a.keys.lookupInScope(normalizeKeyName(keyName), scopeForm)
	if b == nil {
		return a, a.form.Update(m)
	}

	switch b.Action {
	case actionClose:
		a.state = stateBoard
	case actionNextField:
		return a, a.form.focusNext()
	case actionPrevField:
		return a, a.form.focusPrev()
	case actionSave:
		name, description, grams, ok := a.form.submit()
		if !ok {
			return a, nil
		}
		item := a.store.Create(name, description, grams)
		a.state = stateBoard
		a.status = fmt.Sprintf("added %s to %s", item.Name, item.Group.Label())
		a.focusGroup(item.Group)
		a.focusedPane().selectByID(item.ID)
	}
	return a, nil
}

func (a *App) handlePickerKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyName := m.String()
	if keyName == "ctrl+c" {
		return a, tea.Quit
	}
	if a.picker == nil {
		a.state = stateBoard
		return a, nil
	}

	res := a.picker.HandleKey(normalizeKeyName(keyName))
	switch res.Action {
	case pickerActionSelected:
		item := a.picker.item
		a.picker = nil
		a.state = stateBoard
		if res.Group != item.Group {
			a.store.Reassign(item.ID, res.Group)
			a.status = fmt.Sprintf("moved %s to %s", item.Name, res.Group.Label())
			a.focusGroup(res.Group)
			a.focusedPane().selectByID(item.ID)
		}
	case pickerActionCancelled:
		a.picker = nil
		a.state = stateBoard
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyName := m.String()
	if keyName == "ctrl+c" {
		return a, tea.Quit
	}
	b := a.keys.lookupInScope(normalizeKeyName(keyName), scopeSearch)
	if b != nil {
		switch b.Action {
		case actionClearSearch:
			a.search.Reset()
			a.search.Blur()
			a.setQuery("")
			a.state = stateBoard
		case actionConfirm:
			a.search.Blur()
			a.state = stateBoard
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	a.setQuery(a.search.Value())
	return a, cmd
}

func (a *App) setQuery(q string) {
	for _, p := range a.panes {
		p.setQuery(q)
	}
}

func (a *App) focusedPane() *groupPane {
	if a.focus < 0 || a.focus >= len(a.panes) {
		a.focus = 0
	}
	return a.panes[a.focus]
}

func (a *App) focusGroup(g gear.Group) {
	for i, p := range a.panes {
		if p.group == g {
			a.focus = i
			return
		}
	}
}

// ---------------------------------------------------------------------------
// Mouse handling
// ---------------------------------------------------------------------------

func (a *App) handleMouse(m tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.state != stateBoard {
		return a, nil
	}

	switch m.Button {
	case tea.MouseButtonWheelUp:
		if p := a.paneAt(m); p != nil {
			p.moveCursor(-1)
		}
		return a, nil
	case tea.MouseButtonWheelDown:
		if p := a.paneAt(m); p != nil {
			p.moveCursor(1)
		}
		return a, nil
	}

	switch m.Action {
	case tea.MouseActionPress:
		if m.Button != tea.MouseButtonLeft {
			return a, nil
		}
		if row, pane := a.rowAt(m); row != nil {
			a.focusGroup(pane.group)
			pane.selectByID(row.item.ID)
			a.beginDrag(row)
		}
	case tea.MouseActionMotion:
		if a.drag != nil {
			a.updateDragTarget(a.paneAt(m))
		}
	case tea.MouseActionRelease:
		if a.drag != nil {
			a.updateDragTarget(a.paneAt(m))
			a.completeDrop()
		}
	}
	return a, nil
}

// beginDrag opens a drag session and primes it from the source row. Any
// session still in flight is abandoned first; a press starts a new gesture,
// it never continues an old one.
func (a *App) beginDrag(row *itemRow) {
	a.abandonDrag()
	session := dnd.NewSession()
	row.DragStart(session)
	a.drag = &dragState{session: session, source: row}
}

// abandonDrag closes the in-flight drag without a drop. The current target
// hears DragLeave, the source hears DragEnd, and the session is discarded.
func (a *App) abandonDrag() {
	drag := a.drag
	a.drag = nil
	if drag == nil {
		return
	}
	if drag.over != nil {
		drag.over.DragLeave(drag.session)
	}
	drag.source.DragEnd(drag.session)
}

// updateDragTarget moves the gesture onto target, firing DragLeave on the
// pane left behind and DragOver on the new one. Only a pane that accepts the
// payload is remembered as the live target.
func (a *App) updateDragTarget(target *groupPane) {
	if a.drag == nil {
		return
	}
	if a.drag.over == target {
		if target != nil {
			target.DragOver(a.drag.session)
		}
		return
	}
	if a.drag.over != nil {
		a.drag.over.DragLeave(a.drag.session)
	}
	a.drag.over = nil
	if target != nil && target.DragOver(a.drag.session) {
		a.drag.over = target
	}
}

// completeDrop lands the gesture on the current target, if any, then always
// closes the session with DragEnd on the source.
func (a *App) completeDrop() {
	drag := a.drag
	a.drag = nil
	if drag == nil {
		return
	}
	if drag.over != nil {
		from := drag.source.item.Group
		drag.over.Drop(drag.session)
		if drag.over.group != from {
			a.status = fmt.Sprintf("moved %s to %s", drag.source.item.Name, drag.over.group.Label())
			a.focusGroup(drag.over.group)
			a.focusedPane().selectByID(drag.source.item.ID)
		}
	}
	drag.source.DragEnd(drag.session)
}

func (a *App) paneAt(m tea.MouseMsg) *groupPane {
	for _, p := range a.panes {
		z := a.zones.Get(paneZoneID(p.group))
		if z != nil && !z.IsZero() && z.InBounds(m) {
			return p
		}
	}
	return nil
}

func (a *App) rowAt(m tea.MouseMsg) (*itemRow, *groupPane) {
	for _, p := range a.panes {
		for _, r := range p.visible() {
			z := a.zones.Get(itemZoneID(r.item.ID))
			if z != nil && !z.IsZero() && z.InBounds(m) {
				return r, p
			}
		}
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

func (a *App) saveConfigCmd() tea.Cmd {
	cfg := a.cfg
	return func() tea.Msg {
		if err := config.Save(cfg); err != nil {
			return errMsg{err}
		}
		return statusMsg("preferences saved")
	}
}

// messages
type statusMsg string

type errMsg struct{ error }

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

const summaryHeight = 8

var (
	headerStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	footerStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	modalStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)
)

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "loading..."
	}

	body := a.renderBoard()
	base := a.placeWithFooter(body, a.renderStatus(), a.renderFooter())

	switch a.state {
	case stateForm:
		return a.zones.Scan(a.composeOverlay(base, a.form.View()))
	case statePicker:
		if a.picker != nil {
			return a.zones.Scan(a.composeOverlay(base, a.picker.View(32)))
		}
	}
	return a.zones.Scan(base)
}

func (a *App) renderBoard() string {
	draggedID := ""
	if a.drag != nil {
		if id, ok := a.drag.session.Data(dnd.TextPlain); ok {
			draggedID = id
		}
	}

	header := headerStyle.Render("packrat") + statusStyle.Render("  ·  gear board")

	cols := boardColumns(a.width, len(a.panes), a.cfg.UI.Columns)
	rows := (len(a.panes) + cols - 1) / cols

	searchLine := ""
	if a.state == stateSearch || a.search.Value() != "" {
		searchLine = a.search.View()
	}

	// header + optional search + status + footer
	chrome := 2
	if searchLine != "" {
		chrome++
	}
	available := a.height - chrome - 1
	summaryH := summaryHeight
	if available < summaryH+rows*3 {
		summaryH = 3
	}
	paneH := (available - summaryH) / rows
	if paneH < 3 {
		paneH = 3
	}

	widths := splitWidths(a.width, cols)
	var rendered []string
	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if i >= len(a.panes) {
				break
			}
			p := a.panes[i]
			cells = append(cells, p.View(widths[col], paneH, i == a.focus, a.showDesc, draggedID))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	board := lipgloss.JoinVertical(lipgloss.Left, rendered...)

	parts := []string{header, board, a.summary.View(a.width, summaryH)}
	if searchLine != "" {
		parts = append(parts, searchLine)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) renderStatus() string {
	return statusStyle.Render(truncate(a.status, max(0, a.width)))
}

func (a *App) renderFooter() string {
	bindings := a.keys.HelpBindings(a.currentScope())
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		out += "[" + b.Help().Key + "] " + b.Help().Desc
	}
	return footerStyle.Render(truncate(out, max(0, a.width)))
}

func (a *App) currentScope() string {
	switch a.state {
	case stateForm:
		return scopeForm
	case statePicker:
		return scopePicker
	case stateSearch:
		return scopeSearch
	default:
		return scopeBoard
	}
}

func (a *App) placeWithFooter(body, statusLine, footer string) string {
	contentHeight := a.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(a.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	// Full-width lines prevent ghosting from previous frames.
	lines := splitLines(main)
	for i, line := range lines {
		lines[i] = padRight(line, a.width)
	}
	return strings.Join(lines, "\n") + "\n" + statusLine + "\n" + footer
}

func (a *App) composeOverlay(base, content string) string {
	modal := modalStyle.Render(content)
	lines := splitLines(modal)
	modalWidth := maxLineWidth(lines)
	modalHeight := len(lines)

	targetHeight := a.height - 2
	if targetHeight < 1 {
		targetHeight = 1
	}
	x := (a.width - modalWidth) / 2
	if x < 0 {
		x = 0
	}
	y := (targetHeight - modalHeight) / 2
	if y < 0 {
		y = 0
	}
	return overlayAt(base, modal, x, y, a.width, targetHeight)
}
