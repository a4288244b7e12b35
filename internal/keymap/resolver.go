package keymap

// GlobalContext holds bindings active on every screen.
const GlobalContext = "global"

// Resolver maps key strings to actions for one screen context. Bindings of
// the context shadow global ones, so a key such as q can close an overlay
// instead of quitting.
type Resolver struct {
	context string
	local   map[string]Action
	global  map[string]Action
	keys    map[Action][]string // action -> keys, in binding order
}

// NewResolver builds a resolver for context from bindings. Bindings of
// other contexts are ignored.
func NewResolver(context string, bindings []Binding) *Resolver {
	r := &Resolver{
		context: context,
		local:   make(map[string]Action),
		global:  make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	for _, b := range bindings {
		var layer map[string]Action
		switch b.Context {
		case context:
			layer = r.local
		case GlobalContext:
			layer = r.global
		default:
			continue
		}
		for _, k := range b.Keys {
			if _, taken := layer[k]; !taken {
				layer[k] = b.Action
			}
			if !contains(r.keys[b.Action], k) {
				r.keys[b.Action] = append(r.keys[b.Action], k)
			}
		}
	}
	return r
}

// Context returns the screen context the resolver was built for.
func (r *Resolver) Context() string { return r.context }

// Resolve returns the action for key, or "" when nothing is bound.
func (r *Resolver) Resolve(key string) Action {
	if a, ok := r.local[key]; ok {
		return a
	}
	return r.global[key]
}

// Shadowed reports whether a context binding hides a global one for key.
func (r *Resolver) Shadowed(key string) bool {
	_, local := r.local[key]
	_, global := r.global[key]
	return local && global
}

// KeysFor returns the keys bound to action in this context.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
