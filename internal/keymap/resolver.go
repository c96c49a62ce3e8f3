package keymap

import "slices"

// Resolver maps key names, as reported by tea.KeyMsg.String, to actions.
// When a key appears in several bindings the last one wins.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.actions[k] = b.Action
			if !slices.Contains(r.keys[b.Action], k) {
				r.keys[b.Action] = append(r.keys[b.Action], k)
			}
		}
	}
	return r
}

// Resolve returns the action for a key, or "" if the key is not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys bound to an action in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return slices.Clone(r.keys[action])
}
