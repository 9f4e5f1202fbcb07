package plugin

import (
	"fmt"
	"sync"

	"github.com/go-knobs/knobs/pkg/binding"
	"github.com/go-knobs/knobs/pkg/errors"
	"github.com/go-knobs/knobs/pkg/params"
)

// Registry is an ordered list of plugins.
type Registry struct {
	mu      sync.RWMutex
	plugins []InputBindingPlugin
	ids     map[string]struct{}
}

// NewRegistry creates a registry holding plugins in order.
func NewRegistry(plugins ...InputBindingPlugin) (*Registry, error) {
	r := &Registry{ids: make(map[string]struct{})}
	for _, p := range plugins {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register appends p. Plugins with an incompatible core version, a missing
// ID or func, or an ID already registered are rejected.
func (r *Registry) Register(p InputBindingPlugin) error {
	const op = "plugin.Register"
	if p.ID == "" || p.Accept == nil || p.Binding == nil {
		return errors.New(op, errors.KindIncompatiblePlugin,
			fmt.Errorf("plugin %q is incomplete", p.ID))
	}
	if !p.Compatible() {
		return errors.New(op, errors.KindIncompatiblePlugin,
			fmt.Errorf("plugin %q requires core %q, have %s", p.ID, p.Core, CoreVersion))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.ids[p.ID]; dup {
		return errors.New(op, errors.KindIncompatiblePlugin,
			fmt.Errorf("plugin %q already registered", p.ID))
	}
	r.ids[p.ID] = struct{}{}
	r.plugins = append(r.plugins, p)
	return nil
}

// Plugins returns the registered plugins in lookup order.
func (r *Registry) Plugins() []InputBindingPlugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]InputBindingPlugin(nil), r.plugins...)
}

// Find returns the first plugin accepting raw, with the value it accepted.
func (r *Registry) Find(raw any, p params.InputParams) (InputBindingPlugin, any, bool) {
	for _, pl := range r.Plugins() {
		if initial, ok := pl.Accept(raw, p); ok {
			return pl, initial, true
		}
	}
	return InputBindingPlugin{}, nil, false
}

// CreateBinding reads target and builds a binding with the first plugin
// that accepts its value.
func (r *Registry) CreateBinding(target binding.Target, p params.InputParams, onError func(error)) (Binding, error) {
	const op = "plugin.CreateBinding"
	raw, err := target.Read()
	if err != nil {
		return nil, errors.New(op, errors.KindRead, err).WithKey(target.Key())
	}
	pl, initial, ok := r.Find(raw, p)
	if !ok {
		return nil, errors.New(op, errors.KindNotBindable,
			fmt.Errorf("no plugin accepts %T", raw)).WithKey(target.Key())
	}
	b, err := pl.Binding(Args{
		Target:  target,
		Initial: initial,
		Params:  p,
		OnError: onError,
	})
	if err != nil {
		return nil, fmt.Errorf("plugin %q: %w", pl.ID, err)
	}
	return b, nil
}
