package core

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Scope  string
	Action Action
	Keys   []string
	Help   string
}

// KeyOverride replaces the keys of one action in one scope.
type KeyOverride struct {
	Scope  string
	Action string
	Keys   []string
}

// KeyRegistry maps pressed keys to actions per scope. Keys missing from a
// scope fall back to the global scope.
type KeyRegistry struct {
	bindings map[string][]*Binding
	index    map[string]map[string]*Binding
}

const (
	ScopeGlobal = "global"
	ScopeApp    = "app"
)

const (
	ActionQuit   Action = "quit"
	ActionColor  Action = "color"
	ActionLetter Action = "letter"
)

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindings: make(map[string][]*Binding),
		index:    make(map[string]map[string]*Binding),
	}
	r.Register(Binding{Scope: ScopeApp, Action: ActionColor, Keys: []string{"c"}, Help: "new color"})
	r.Register(Binding{Scope: ScopeApp, Action: ActionLetter, Keys: []string{"l"}, Help: "new letter"})
	r.Register(Binding{Scope: ScopeGlobal, Action: ActionQuit, Keys: []string{"q", "ctrl+c"}, Help: "quit"})
	return r
}

// Register adds b unless it has no keys or one of its keys is already bound
// in its scope.
func (r *KeyRegistry) Register(b Binding) {
	keys := normalizeKeyList(b.Keys)
	if r == nil || b.Scope == "" || len(keys) == 0 {
		return
	}
	idx := r.index[b.Scope]
	for _, k := range keys {
		if _, taken := idx[k]; taken {
			return
		}
	}
	b.Keys = keys
	r.bindings[b.Scope] = append(r.bindings[b.Scope], &b)
	r.rebuildIndex()
}

func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	out := make([]Binding, 0, len(r.bindings[scope]))
	for _, b := range r.bindings[scope] {
		out = append(out, *b)
	}
	return out
}

// Lookup finds the binding for keyName in scope, then in the global scope.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil {
		return nil
	}
	k := normalizeKeyName(keyName)
	if k == "" {
		return nil
	}
	if b := r.index[scope][k]; b != nil {
		return b
	}
	return r.index[ScopeGlobal][k]
}

// HelpBindings lists the bindings of scope followed by the global ones.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	if scope != ScopeGlobal {
		items = append(items, r.BindingsForScope(ScopeGlobal)...)
	}
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n != "" && !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out
}

// normalizeKeyName lowercases key names as Bubble Tea reports them. A lone
// uppercase rune stays distinct from its lowercase key.
func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	k = strings.TrimSpace(k)
	if len(k) == 1 && k[0] >= 'A' && k[0] <= 'Z' {
		return k
	}
	return strings.ToLower(strings.ReplaceAll(k, " ", ""))
}

// ApplyOverrides replaces action keys. Unknown scopes and actions are
// rejected with the closest known name, and keys may not collide within a
// scope or shadow a global binding.
func (r *KeyRegistry) ApplyOverrides(items []KeyOverride) error {
	if r == nil || len(items) == 0 {
		return nil
	}
	type pair struct {
		scope  string
		action Action
	}
	seenPair := make(map[pair]bool)
	for _, o := range items {
		scope := strings.TrimSpace(o.Scope)
		if scope == "" {
			return fmt.Errorf("shortcut override: scope is required")
		}
		action := Action(strings.TrimSpace(o.Action))
		if action == "" {
			return fmt.Errorf("shortcut override scope=%q: action is required", scope)
		}
		keys := normalizeKeyList(o.Keys)
		if len(keys) == 0 {
			return fmt.Errorf("shortcut override scope=%q action=%q: keys are required", scope, action)
		}

		bindings := r.bindings[scope]
		if len(bindings) == 0 {
			return fmt.Errorf("shortcut override scope=%q action=%q: unknown scope%s", scope, action, suggest(scope, r.scopes()))
		}
		var target *Binding
		names := make([]string, 0, len(bindings))
		for _, b := range bindings {
			names = append(names, string(b.Action))
			if b.Action == action {
				target = b
			}
		}
		if target == nil {
			return fmt.Errorf("shortcut override scope=%q action=%q: unknown action in scope%s", scope, action, suggest(string(action), names))
		}
		p := pair{scope: scope, action: action}
		if seenPair[p] {
			return fmt.Errorf("shortcut override scope=%q action=%q: duplicated override entry", scope, action)
		}
		seenPair[p] = true
		target.Keys = keys
	}

	r.rebuildIndex()
	global := make(map[string]Action)
	for _, b := range r.bindings[ScopeGlobal] {
		for _, k := range b.Keys {
			global[k] = b.Action
		}
	}
	for _, scope := range r.scopes() {
		seen := make(map[string]Action)
		for _, b := range r.bindings[scope] {
			for _, k := range b.Keys {
				if prev, ok := seen[k]; ok {
					return fmt.Errorf("shortcut override conflict in scope=%q: key %q used by both %q and %q", scope, k, prev, b.Action)
				}
				seen[k] = b.Action
				if prev, ok := global[k]; ok && scope != ScopeGlobal {
					return fmt.Errorf("shortcut override conflict in scope=%q: key %q shadows global %q", scope, k, prev)
				}
			}
		}
	}
	return nil
}

func (r *KeyRegistry) rebuildIndex() {
	r.index = make(map[string]map[string]*Binding, len(r.bindings))
	for scope, bindings := range r.bindings {
		idx := make(map[string]*Binding)
		for _, b := range bindings {
			for _, k := range b.Keys {
				if _, taken := idx[k]; !taken {
					idx[k] = b
				}
			}
		}
		r.index[scope] = idx
	}
}

func (r *KeyRegistry) scopes() []string {
	out := make([]string, 0, len(r.bindings))
	for scope := range r.bindings {
		out = append(out, scope)
	}
	sort.Strings(out)
	return out
}

// suggest formats a "did you mean" hint for the candidate closest to name.
func suggest(name string, candidates []string) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(name), c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == "" || bestDist > max(2, len(best)/2) {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}
