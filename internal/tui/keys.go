package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scope  string
}

// KeyRegistry maps pressed keys to actions per input scope, with a global
// fallback scope consulted last.
type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal = "global"
	scopeBoard  = "board"
	scopeForm   = "form"
	scopePicker = "picker"
	scopeSearch = "search"
)

const (
	actionQuit        Action = "quit"
	actionNavigate    Action = "navigate"
	actionNextPane    Action = "next_pane"
	actionPrevPane    Action = "prev_pane"
	actionJumpTop     Action = "jump_top"
	actionJumpBottom  Action = "jump_bottom"
	actionAdd         Action = "add"
	actionMove        Action = "move"
	actionSearch      Action = "search"
	actionToggleDesc  Action = "toggle_desc"
	actionSelect      Action = "select"
	actionClose       Action = "close"
	actionNextField   Action = "next_field"
	actionPrevField   Action = "prev_field"
	actionSave        Action = "save"
	actionClearSearch Action = "clear_search"
	actionConfirm     Action = "confirm"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scope: scope})
	}

	// Global fallback lookup.
	reg(scopeGlobal, actionQuit, []string{"q", "ctrl+c"}, "quit")

	// Board footer.
	reg(scopeBoard, actionNavigate, []string{"j/k", "j", "k", "up", "down"}, "navigate")
	reg(scopeBoard, actionNextPane, []string{"tab", "l", "right"}, "next group")
	reg(scopeBoard, actionPrevPane, []string{"shift+tab", "h", "left"}, "prev group")
	reg(scopeBoard, actionJumpTop, []string{"g"}, "top")
	reg(scopeBoard, actionJumpBottom, []string{"G"}, "bottom")
	reg(scopeBoard, actionAdd, []string{"a"}, "add item")
	reg(scopeBoard, actionMove, []string{"m", "enter"}, "move item")
	reg(scopeBoard, actionSearch, []string{"/"}, "search")
	reg(scopeBoard, actionToggleDesc, []string{"d"}, "descriptions")

	// Add-item form footer.
	reg(scopeForm, actionNextField, []string{"tab", "down"}, "next field")
	reg(scopeForm, actionPrevField, []string{"shift+tab", "up"}, "prev field")
	reg(scopeForm, actionSave, []string{"enter"}, "save")
	reg(scopeForm, actionClose, []string{"esc"}, "cancel")

	// Move picker footer.
	reg(scopePicker, actionNavigate, []string{"j/k", "j", "k", "up", "down"}, "navigate")
	reg(scopePicker, actionSelect, []string{"enter"}, "move")
	reg(scopePicker, actionClose, []string{"esc"}, "cancel")

	// Search footer.
	reg(scopeSearch, actionClearSearch, []string{"esc"}, "clear search")
	reg(scopeSearch, actionConfirm, []string{"enter"}, "confirm")

	return r
}

func (r *KeyRegistry) Register(b Binding) {
	if r == nil || b.Scope == "" {
		return
	}
	keys := normalizeKeyList(b.Keys)
	if len(keys) == 0 {
		return
	}
	if _, ok := r.indexByScope[b.Scope]; !ok {
		r.indexByScope[b.Scope] = make(map[string]*Binding)
	}

	copyBinding := b
	copyBinding.Keys = keys
	r.bindingsByScope[b.Scope] = append(r.bindingsByScope[b.Scope], &copyBinding)
	for _, k := range copyBinding.Keys {
		if _, taken := r.indexByScope[b.Scope][k]; !taken {
			r.indexByScope[b.Scope][k] = &copyBinding
		}
	}
}

// Lookup resolves a pressed key in the given scope, falling back to the
// global scope. Returns nil when the key is unbound.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal {
		return r.lookupInScope(keyName, scopeGlobal)
	}
	return nil
}

// HelpBindings returns the scope's bindings (plus the global ones) in
// registration order, shaped for footer rendering.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	if r == nil {
		return nil
	}
	items := append([]*Binding(nil), r.bindingsByScope[scope]...)
	if scope != scopeGlobal {
		items = append(items, r.bindingsByScope[scopeGlobal]...)
	}
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	return r.indexByScope[scope][keyName]
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			// Preserve single uppercase rune so uppercase/lowercase bindings
			// can be distinct actions within the same scope.
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	return s
}
