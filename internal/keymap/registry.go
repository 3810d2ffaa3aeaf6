// Package keymap maps keys to commands per UI context, with user overrides.
package keymap

// Binding associates a key with a command in a context.
type Binding struct {
	Key     string
	Command string
	Context string
}

// Registry resolves keys to commands. Context-specific bindings win over
// global ones; user overrides win over defaults.
type Registry struct {
	bindings  map[string]map[string]string // context -> key -> command
	overrides map[string]string            // key -> command, global scope
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings:  make(map[string]map[string]string),
		overrides: make(map[string]string),
	}
}

// RegisterBinding adds a binding to the registry.
func (r *Registry) RegisterBinding(b Binding) {
	ctx := b.Context
	if ctx == "" {
		ctx = "global"
	}
	if r.bindings[ctx] == nil {
		r.bindings[ctx] = make(map[string]string)
	}
	r.bindings[ctx][b.Key] = b.Command
}

// SetUserOverride maps a key to a command ahead of any default binding.
func (r *Registry) SetUserOverride(key, command string) {
	r.overrides[key] = command
}

// Resolve returns the command bound to key in the given context, falling
// back to the global context. Empty string means the key is unbound.
func (r *Registry) Resolve(context, key string) string {
	if cmd, ok := r.overrides[key]; ok {
		return cmd
	}
	if m := r.bindings[context]; m != nil {
		if cmd, ok := m[key]; ok {
			return cmd
		}
	}
	if m := r.bindings["global"]; m != nil {
		if cmd, ok := m[key]; ok {
			return cmd
		}
	}
	return ""
}
